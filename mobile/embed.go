//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
//
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed data/pages
var dataFS embed.FS

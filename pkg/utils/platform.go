//go:build !mobile

// Package utils 提供与平台相关的小工具
package utils

import "os"

// MobileEmulateEnv 设置为 "1" 时桌面端按移动端处理（用于本地调试触摸布局）
const MobileEmulateEnv = "RSLIDER_MOBILE_EMULATE"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时返回 false，除非设置了 MobileEmulateEnv
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}

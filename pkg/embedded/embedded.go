// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）或 mobile 包中。
// 本包提供包装函数，让其他包可以访问嵌入的页面配置。
//
// 以 "data/" 开头的路径优先从嵌入资源读取；其他路径（以及未初始化时）直接读磁盘，
// 这样命令行 -config 可以指向任意文件。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// dataPrefix 嵌入资源的路径前缀
const dataPrefix = "data/"

var (
	dataFS      fs.FS
	initialized bool
)

// Init 初始化嵌入资源
// 必须在 main() 开始时、任何配置加载之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = data != nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 标准化路径分隔符为正斜杠并移除 "./" 前缀（embed.FS 使用正斜杠）
func normalize(path string) string {
	return strings.TrimPrefix(filepath.ToSlash(path), "./")
}

// ReadFile 读取文件内容
// "data/" 路径在嵌入资源中找不到时回退到磁盘
func ReadFile(path string) ([]byte, error) {
	p := normalize(path)
	if initialized && strings.HasPrefix(p, dataPrefix) {
		data, err := fs.ReadFile(dataFS, p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read embedded %s: %w", p, err)
		}
	}
	return os.ReadFile(path)
}

// Exists 检查文件是否存在（嵌入资源或磁盘）
func Exists(path string) bool {
	p := normalize(path)
	if initialized && strings.HasPrefix(p, dataPrefix) {
		if _, err := fs.Stat(dataFS, p); err == nil {
			return true
		}
	}
	_, err := os.Stat(path)
	return err == nil
}

// Glob 在嵌入资源中匹配文件，模式必须以 "data/" 开头
func Glob(pattern string) ([]string, error) {
	if !initialized {
		return nil, fmt.Errorf("embedded package not initialized, call Init() first")
	}
	pattern = normalize(pattern)
	if !strings.HasPrefix(pattern, dataPrefix) {
		return nil, fmt.Errorf("unknown resource path prefix: %s (must start with '%s')", pattern, dataPrefix)
	}
	return fs.Glob(dataFS, pattern)
}

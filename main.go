package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/rslider/pkg/app"
	"github.com/decker502/rslider/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	pagePath = flag.String("config", app.DefaultPagePath, "页面配置文件（data/ 开头的路径优先使用嵌入资源）")
	verbose  = flag.Bool("verbose", false, "显示详细日志（包括 onChange / onDrop）")
	mute     = flag.Bool("mute", false, "关闭拖拽结束提示音")
	remote   = flag.String("remote", "", "WebSocket 状态服务监听地址，例如 :8765（为空不启动）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	demo, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		PagePath:   *pagePath,
		Mute:       *mute,
		RemoteAddr: *remote,
	})
	if err != nil {
		// 非 verbose 模式下日志已被关闭，直接输出到标准错误
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}
	defer demo.Close()

	window := demo.WindowConfig()
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(demo); err != nil {
		demo.Close()
		fmt.Fprintf(os.Stderr, "运行失败: %v\n", err)
		os.Exit(1)
	}
}

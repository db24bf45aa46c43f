// Package app 提供滑动条演示应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"log"
	"strings"

	"github.com/decker502/rslider/pkg/config"
	"github.com/decker502/rslider/pkg/ecs"
	"github.com/decker502/rslider/pkg/page"
	"github.com/decker502/rslider/pkg/remote"
	"github.com/decker502/rslider/pkg/systems"
	"github.com/decker502/rslider/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultPagePath 默认页面配置（嵌入资源）
const DefaultPagePath = "data/pages/demo.yaml"

// sampleRate 音频采样率
const sampleRate = 48000

var backgroundColor = color.RGBA{R: 0x22, G: 0x26, B: 0x2e, A: 0xff}

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// PagePath 页面配置路径，为空时使用 DefaultPagePath
	PagePath string
	// Mute 关闭拖拽结束的提示音
	Mute bool
	// RemoteAddr 非空时在该地址启动 WebSocket 状态服务，例如 ":8765"
	RemoteAddr string
}

// Clicker 拖拽结束时的提示音
type Clicker interface {
	Play()
}

// KeyInput 键盘输入接口，用于测试时 mock
type KeyInput interface {
	IsKeyJustPressed(key ebiten.Key) bool
}

type ebitenKeyInput struct{}

func (ebitenKeyInput) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// App 是演示应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	page        *page.Page
	pageConfig  *config.PageConfig
	input       *systems.SliderInputSystem
	sliderDraw  *systems.SliderRenderSystem
	fieldDraw   *systems.InputFieldRenderSystem
	keys        KeyInput
	clicker     Clicker
	remote      *remote.Server
	stopRemote  context.CancelFunc
	verbose     bool
	layoutW     int
	layoutH     int
	disabledAll bool
}

// NewApp 创建并初始化演示应用
//
// 调用此函数前，如需读取嵌入的页面配置，必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	path := cfg.PagePath
	if path == "" {
		path = DefaultPagePath
	}
	pageConfig, err := config.LoadPageConfig(path)
	if err != nil {
		return nil, fmt.Errorf("页面配置加载失败: %w", err)
	}
	log.Printf("[App] Loaded page config: %s", path)

	var clicker Clicker
	if !cfg.Mute {
		clicker = NewClickSound(audio.NewContext(sampleRate))
	}

	style := page.DefaultStyle()
	if utils.IsMobile() {
		style = page.TouchStyle()
		log.Printf("[App] Mobile mode, using touch style")
	}

	var srv *remote.Server
	if cfg.RemoteAddr != "" {
		srv = remote.NewServer(remote.Config{Addr: cfg.RemoteAddr})
	}

	a, err := newApp(pageConfig, style, nil, ebitenKeyInput{}, clicker, srv)
	if err != nil {
		return nil, err
	}
	a.verbose = cfg.Verbose

	if srv != nil {
		ctx, cancel := context.WithCancel(context.Background())
		a.stopRemote = cancel
		go func() {
			if err := srv.ListenAndServe(ctx); err != nil {
				log.Printf("[App] Warning: remote server stopped: %v", err)
			}
		}()
	}
	return a, nil
}

// newApp 组装页面和系统；device 为 nil 时使用 Ebitengine 输入，srv 为 nil 时不发布状态
func newApp(pageConfig *config.PageConfig, style page.Style, device systems.PointerDevice, keys KeyInput, clicker Clicker, srv *remote.Server) (*App, error) {
	a := &App{
		pageConfig: pageConfig,
		keys:       keys,
		clicker:    clicker,
		remote:     srv,
	}

	em := ecs.NewEntityManager()
	p, err := page.Build(em, style, pageConfig, page.Callbacks{
		OnChange: func(id, value string) {
			log.Printf("[App] onChange %s = %s", id, value)
			if a.remote != nil {
				a.remote.PublishChange(id, value)
			}
		},
		OnDrop: func(id string) {
			log.Printf("[App] onDrop %s", id)
			if a.clicker != nil {
				a.clicker.Play()
			}
			if a.remote != nil {
				a.remote.PublishDrop(id)
			}
		},
	})
	if err != nil {
		return nil, fmt.Errorf("页面创建失败: %w", err)
	}
	a.page = p

	if srv != nil {
		for _, id := range p.FieldIDs() {
			if s, ok := p.Slider(id); ok {
				srv.PublishDisabled(id, s.Disabled())
			}
		}
	}

	if device != nil {
		a.input = systems.NewSliderInputSystemWithDevice(p.Events(), device)
	} else {
		a.input = systems.NewSliderInputSystem(p.Events())
	}
	a.sliderDraw = systems.NewSliderRenderSystem(em)
	a.fieldDraw = systems.NewInputFieldRenderSystem(em)
	return a, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// Layout 记录的尺寸在这里转为 resize 通知，保证事件都在 Update 中派发
	if a.layoutW > 0 && a.layoutH > 0 {
		a.page.Resize(a.layoutW, a.layoutH)
	}

	// D 键切换所有滑动条的禁用状态
	if a.keys != nil && a.keys.IsKeyJustPressed(ebiten.KeyD) {
		a.disabledAll = !a.disabledAll
		for _, id := range a.page.FieldIDs() {
			s, ok := a.page.Slider(id)
			if !ok {
				continue
			}
			s.SetDisabled(a.disabledAll)
			if a.remote != nil {
				a.remote.PublishDisabled(id, a.disabledAll)
			}
		}
		log.Printf("[App] Sliders disabled: %v", a.disabledAll)
	}

	if a.remote != nil {
		a.remote.ApplyPending(a.page.Slider)
	}

	deltaTime := 1.0 / 60.0
	a.input.Update(deltaTime)
	a.page.Update()
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	a.fieldDraw.Draw(screen)
	a.sliderDraw.Draw(screen)

	h := screen.Bounds().Dy()
	ebitenutil.DebugPrintAt(screen, a.StatusLine(), 8, h-20)
}

// Layout 逻辑屏幕尺寸跟随窗口尺寸，滑动条按新尺寸重新布局
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.layoutW, a.layoutH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// StatusLine 所有输入框当前值的摘要
func (a *App) StatusLine() string {
	var parts []string
	for _, id := range a.page.FieldIDs() {
		el, ok := a.page.ElementByID(id)
		if !ok {
			continue
		}
		parts = append(parts, id+"="+el.Value())
	}
	if a.disabledAll {
		parts = append(parts, "[disabled]")
	}
	return strings.Join(parts, "  ")
}

// Close 停止 WebSocket 状态服务
func (a *App) Close() {
	if a.stopRemote != nil {
		a.stopRemote()
		a.stopRemote = nil
	}
}

// Remote 返回 WebSocket 状态服务，未启用时为 nil
func (a *App) Remote() *remote.Server {
	return a.remote
}

// Page 返回当前页面
func (a *App) Page() *page.Page {
	return a.page
}

// WindowConfig 页面配置中的窗口参数
func (a *App) WindowConfig() config.WindowConfig {
	return a.pageConfig.Window
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

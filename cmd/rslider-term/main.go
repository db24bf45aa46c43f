// rslider-term 在终端中运行滑动条演示页面
//
// 用法：
//
//	go run ./cmd/rslider-term -config data/pages/demo.yaml -log /tmp/rslider.log -remote :8765
//
// 鼠标拖动手柄或点击轨道修改取值，d 切换禁用，q / Esc 退出。
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/rslider/pkg/config"
	"github.com/decker502/rslider/pkg/remote"
	"github.com/decker502/rslider/pkg/terminal"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

var (
	pagePath   = flag.String("config", "data/pages/demo.yaml", "页面配置文件")
	logPath    = flag.String("log", "", "日志文件（终端被页面占用，默认不输出日志）")
	logLevel   = flag.String("log-level", "info", "日志级别：debug, info, warn, error")
	remoteAddr = flag.String("remote", "", "WebSocket 状态服务监听地址，例如 :8765（为空不启动）")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "rslider-term: %v\n", err)
		os.Exit(1)
	}
}

// newLogger 创建写入文件的 logrus 日志，并把标准库 log 的输出转接过来
func newLogger() (*logrus.Logger, func(), error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})

	if *logPath == "" {
		logger.SetOutput(io.Discard)
		log.SetOutput(io.Discard)
		return logger, func() {}, nil
	}

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		return nil, nil, err
	}
	logger.SetLevel(level)

	f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(f)

	// 各个包的 log.Printf 以 debug 级别写入同一个文件
	w := logger.WriterLevel(logrus.DebugLevel)
	log.SetFlags(0)
	log.SetOutput(w)

	return logger, func() {
		_ = w.Close()
		_ = f.Close()
	}, nil
}

func run() error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.LoadPageConfig(*pagePath)
	if err != nil {
		return err
	}

	var srv *remote.Server
	if *remoteAddr != "" {
		srv = remote.NewServer(remote.Config{Addr: *remoteAddr})
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	term, err := terminal.Build(screen, cfg, terminal.Callbacks{
		OnChange: func(id, value string) {
			logger.WithFields(logrus.Fields{"id": id, "value": value}).Info("onChange")
			if srv != nil {
				srv.PublishChange(id, value)
			}
		},
		OnDrop: func(id string) {
			logger.WithField("id", id).Info("onDrop")
			if srv != nil {
				srv.PublishDrop(id)
			}
		},
	})
	if err != nil {
		return err
	}

	if srv != nil {
		term.SetRemote(srv)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			if err := srv.ListenAndServe(ctx); err != nil {
				logger.WithError(err).Error("remote server stopped")
			}
		}()
	}

	logger.WithField("config", *pagePath).Info("terminal page started")
	return term.Run()
}

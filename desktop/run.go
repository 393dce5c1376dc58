package desktop

import (
	"io/fs"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"tavern/shell"
)

type Options struct {
	Host        *Host
	Shell       *shell.Coordinator
	Assets      fs.FS
	StartHidden bool
}

// Run blocks on the Wails event loop until the application exits.
func Run(o Options) error {
	return wails.Run(&options.App{
		Title:       "Tavern",
		Width:       1100,
		Height:      760,
		MinWidth:    420,
		MinHeight:   480,
		StartHidden: o.StartHidden,
		AssetServer: &assetserver.Options{
			Assets: o.Assets,
		},
		BackgroundColour: &options.RGBA{R: 24, G: 22, B: 28, A: 1},
		SingleInstanceLock: &options.SingleInstanceLock{
			UniqueId: "io.tavern.desktop",
			OnSecondInstanceLaunch: func(options.SecondInstanceData) {
				o.Shell.FocusMainWindow()
			},
		},
		OnStartup:     o.Host.startup,
		OnShutdown:    o.Host.shutdown,
		OnBeforeClose: o.Host.beforeClose,
		Bind: []interface{}{
			NewCommands(o.Shell),
		},
	})
}

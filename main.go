package main

import (
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	_ "net/http/pprof"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"sync"
	"time"

	"tavern/desktop"
	"tavern/doctor"
	"tavern/hotkey"
	"tavern/log"
	"tavern/notify"
	"tavern/shell"
	"tavern/shutdown"
	"tavern/skins"
	"tavern/tray"
)

var version = "dev"

//go:embed all:frontend/dist
var frontend embed.FS

func init() {
	// The webview and the hotkey backend both need the main OS thread.
	runtime.LockOSThread()
}

var shutdownOnce sync.Once

func gracefulShutdown(code int) {
	shutdownOnce.Do(func() {
		log.Info("shutdown")
		log.Close()
		tray.Quit()
		os.Exit(code)
	})
}

func main() {
	versionFlag := flag.Bool("version", false, "Print version and exit")
	doctorFlag := flag.Bool("doctor", false, "Run system diagnostics and exit")
	logPathFlag := flag.String("logpath", "", "log directory path (default: OS-specific location, use ./ for current dir)")
	profileFlag := flag.String("profile", "", "Enable pprof profiling server (e.g., :6060 or localhost:6060)")
	hiddenFlag := flag.Bool("hidden", false, "Start with the main window hidden in the tray")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("tavern %s\n", version)
		os.Exit(0)
	}

	// Resolve log directory early
	logPath, err := log.ResolveDir(*logPathFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to resolve log directory: %v\n", err)
		os.Exit(1)
	}
	log.SetDir(logPath)

	if err := log.EnsureDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
	}

	crashPath := filepath.Join(log.Dir(), "crash_log.txt")
	crashFile, err := os.OpenFile(crashPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		fmt.Fprintf(crashFile, "\n=== Session %s [pid=%d] ===\n", time.Now().Format("2006-01-02 15:04:05"), os.Getpid())
		debug.SetCrashOutput(crashFile, debug.CrashOptions{})
	}

	if *profileFlag != "" {
		go func() {
			fmt.Fprintf(os.Stderr, "pprof server listening on http://%s/debug/pprof/\n", *profileFlag)
			if err := http.ListenAndServe(*profileFlag, nil); err != nil {
				fmt.Fprintf(os.Stderr, "pprof server error: %v\n", err)
			}
		}()
	}

	if *doctorFlag {
		os.Exit(doctor.Run())
	}

	if err := log.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open diagnostics log: %v\n", err)
	}
	log.Infof("tavern %s starting", version)

	assets, err := fs.Sub(frontend, "frontend/dist")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	host := desktop.NewHost(*hiddenFlag)
	coord := shell.New(shell.Config{
		Host:        host,
		Shortcuts:   hotkey.NewManager(),
		Notifier:    notify.New("Tavern", tray.AppIcon()),
		Exit:        gracefulShutdown,
		OnTrayState: tray.SetState,
	})
	host.OnClose(coord.InterceptClose)
	host.OnReady(func() {
		if err := coord.Start(); err != nil {
			// The app stays usable without push-to-talk.
			log.Errorf("startup hotkey: %v", err)
		}
		startTray(coord)
		startSkinsWatcher(coord)
	})

	shutdown.Handle(func(sig os.Signal) {
		log.Infof("signal %v", sig)
		gracefulShutdown(0)
	})

	if err := desktop.Run(desktop.Options{
		Host:        host,
		Shell:       coord,
		Assets:      assets,
		StartHidden: *hiddenFlag,
	}); err != nil {
		log.Errorf("wails: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		gracefulShutdown(1)
	}
	gracefulShutdown(0)
}

func startTray(coord *shell.Coordinator) {
	var items []tray.Item
	for _, e := range shell.Menu() {
		items = append(items, tray.Item{ID: e.ID, Label: e.Label})
	}
	done := tray.Start(items, coord)
	go func() {
		<-done
		log.Info("tray exited")
	}()
}

func startSkinsWatcher(coord *shell.Coordinator) {
	dir, ok := skins.Dir()
	if !ok {
		return
	}
	w, err := skins.NewWatcher(dir, coord.SkinsChanged)
	if err != nil {
		log.Warnf("skins watcher: %v", err)
		return
	}
	if err := w.Start(); err != nil {
		// Missing directory is normal until the user installs a skin.
		log.Debug("skins watcher not started: " + err.Error())
		w.Stop()
	}
}

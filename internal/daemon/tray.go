//go:build windows
// +build windows

package daemon

import (
	"fmt"
	"syscall"
	"unsafe"

	"fyne.io/systray"
	"go.uber.org/zap"
)

var (
	user32      = syscall.NewLazyDLL("user32.dll")
	messageBoxW = user32.NewProc("MessageBoxW")
)

const (
	MB_OK              = 0x00000000
	MB_ICONINFORMATION = 0x00000040
)

// TrayApp represents system tray application
type TrayApp struct {
	daemon *Daemon
	logger *zap.Logger
	quit   chan struct{}
}

// NewTrayApp creates a new system tray application
func NewTrayApp(daemon *Daemon, logger *zap.Logger) (*TrayApp, error) {
	return &TrayApp{
		daemon: daemon,
		logger: logger,
		quit:   make(chan struct{}),
	}, nil
}

// Run starts the system tray application (blocks until Quit)
func (t *TrayApp) Run() {
	systray.Run(t.onReady, t.onExit)
}

func (t *TrayApp) onReady() {
	systray.SetIcon(clockIcon)
	systray.SetTitle("Holiday Clock")
	systray.SetTooltip(t.daemon.Tooltip(t.daemon.localNow()))

	// Add menu items
	mNext := systray.AddMenuItem("Next Holiday", "Show the upcoming holiday")
	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Exit the application")

	// Start clock loop in background
	go func() {
		if err := t.daemon.run(t.daemon.ctx); err != nil {
			t.logger.Error("Clock loop failed", zap.Error(err))
		}
	}()

	// Handle menu item clicks
	go func() {
		for {
			select {
			case <-mNext.ClickedCh:
				t.logger.Info("Next Holiday clicked from tray")
				t.showNextHoliday()
			case <-mQuit.ClickedCh:
				t.logger.Info("Quit clicked from tray")
				t.daemon.Stop()
				systray.Quit()
				return
			case <-t.quit:
				systray.Quit()
				return
			}
		}
	}()
}

func (t *TrayApp) onExit() {
	t.logger.Info("System tray exited")
}

// Stop stops the system tray application
func (t *TrayApp) Stop() {
	select {
	case <-t.quit:
	default:
		close(t.quit)
	}
}

// SetTooltip updates the tray tooltip
func (t *TrayApp) SetTooltip(text string) {
	systray.SetTooltip(text)
}

// showNextHoliday shows the upcoming holiday in a message box
func (t *TrayApp) showNextHoliday() {
	status := t.daemon.Status()
	t.logger.Info("Current status", zap.Any("status", status))

	message := "No holidays configured"
	if next, ok := status["next_holiday"].(map[string]interface{}); ok {
		message = fmt.Sprintf("%v\nDate: %v\n%v", next["name"], next["date"], next["countdown"])
	}

	showMessageBox("Next Holiday", message)
}

func showMessageBox(title, message string) {
	titlePtr, _ := syscall.UTF16PtrFromString(title)
	messagePtr, _ := syscall.UTF16PtrFromString(message)
	messageBoxW.Call(
		0,
		uintptr(unsafe.Pointer(messagePtr)),
		uintptr(unsafe.Pointer(titlePtr)),
		uintptr(MB_OK|MB_ICONINFORMATION),
	)
}

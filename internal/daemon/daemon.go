package daemon

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/username/holiday-clock/internal/calendar"
	"github.com/username/holiday-clock/internal/clock"
)

const clearScreen = "\x1b[H\x1b[2J"

// FrameRenderer turns a frame into printable text
type FrameRenderer interface {
	Render(f clock.Frame, s clock.State) string
}

// Options configures the daemon
type Options struct {
	Interval    time.Duration
	Location    *time.Location
	SystemTray  bool
	ClearScreen bool // redraw in place on a terminal
}

// Daemon drives the clock from a single periodic timer
type Daemon struct {
	clock    *clock.Clock
	renderer FrameRenderer
	out      io.Writer
	opts     Options
	logger   *zap.Logger
	ctx      context.Context
	cancel   context.CancelFunc
	trayApp  *TrayApp
	now      func() time.Time

	mu          sync.Mutex
	lastHoliday string
	frames      int
}

// NewDaemon creates a new daemon instance
func NewDaemon(c *clock.Clock, renderer FrameRenderer, out io.Writer, opts Options, logger *zap.Logger) *Daemon {
	ctx, cancel := context.WithCancel(context.Background())

	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}

	return &Daemon{
		clock:    c,
		renderer: renderer,
		out:      out,
		opts:     opts,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
		now:      time.Now,
	}
}

// Start starts the daemon and blocks until it is stopped
func (d *Daemon) Start() error {
	// Initialize system tray if enabled (Windows only)
	if d.opts.SystemTray {
		d.logger.Info("Initializing system tray")
		trayApp, err := NewTrayApp(d, d.logger)
		if err != nil {
			d.logger.Warn("Failed to initialize system tray", zap.Error(err))
			// Fall back to console mode
			return d.run(d.ctx)
		}
		d.trayApp = trayApp
		// Run tray (blocks until Quit)
		d.trayApp.Run()
		return nil
	}

	d.logger.Info("Running without system tray")
	return d.run(d.ctx)
}

// RunWithTimeout runs the clock loop until the timeout elapses (for testing)
func (d *Daemon) RunWithTimeout(timeout time.Duration) error {
	d.logger.Info("Daemon started with timeout",
		zap.Duration("timeout", timeout),
		zap.Duration("tick_interval", d.opts.Interval))

	ctx, cancel := context.WithTimeout(d.ctx, timeout)
	defer cancel()

	return d.run(ctx)
}

// run renders a frame immediately and then once per tick
func (d *Daemon) run(ctx context.Context) error {
	d.logger.Info("Clock loop started",
		zap.Duration("tick_interval", d.opts.Interval),
		zap.String("timezone", d.opts.Location.String()))

	// Setup signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	if err := d.render(); err != nil {
		return err
	}

	ticker := time.NewTicker(d.opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("Daemon stopped", zap.Int("frames", d.Frames()))
			if d.trayApp != nil {
				d.trayApp.Stop()
			}
			return nil

		case sig := <-sigChan:
			d.logger.Info("Received signal, shutting down",
				zap.String("signal", sig.String()))
			if d.trayApp != nil {
				d.trayApp.Stop()
			}
			d.Stop()
			return nil

		case <-ticker.C:
			d.clock.Tick()
			if err := d.render(); err != nil {
				return err
			}
		}
	}
}

// Stop stops the daemon
func (d *Daemon) Stop() {
	d.cancel()
}

// Frames returns how many frames have been drawn
func (d *Daemon) Frames() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frames
}

// render draws one frame and refreshes the tray tooltip when the holiday line changes
func (d *Daemon) render() error {
	now := d.localNow()
	state := d.clock.State()
	frame := d.clock.Frame(now)

	text := d.renderer.Render(frame, state)
	if d.opts.ClearScreen {
		text = clearScreen + text
	}
	if _, err := fmt.Fprintln(d.out, text); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}

	holiday := d.Tooltip(now)

	d.mu.Lock()
	d.frames++
	changed := holiday != d.lastHoliday
	d.lastHoliday = holiday
	d.mu.Unlock()

	if changed {
		d.logger.Info("Holiday countdown changed", zap.String("holiday", holiday))
		if d.trayApp != nil {
			d.trayApp.SetTooltip(holiday)
		}
	}

	return nil
}

// localNow returns the current time in the configured zone
func (d *Daemon) localNow() time.Time {
	return d.now().In(d.opts.Location)
}

// Tooltip returns the holiday countdown shown by the tray icon
func (d *Daemon) Tooltip(now time.Time) string {
	state := d.clock.State()
	return calendar.FormatCountdown(d.clock.Holidays(), now, state.HolidayFormat, state.DisableIcons)
}

// Status returns daemon status
func (d *Daemon) Status() map[string]interface{} {
	now := d.localNow()
	status := map[string]interface{}{
		"running":       d.ctx.Err() == nil,
		"tick_interval": d.opts.Interval.String(),
		"timezone":      d.opts.Location.String(),
		"frames":        d.Frames(),
	}

	if next, ok := calendar.Next(d.clock.Holidays(), now); ok {
		status["next_holiday"] = map[string]interface{}{
			"name":      next.Name,
			"date":      next.Date.Format("2006-01-02"),
			"countdown": calendar.FormatCountdown(d.clock.Holidays(), now, calendar.FormatDays, true),
		}
	}

	return status
}

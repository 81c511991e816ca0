package internal

import (
	"context"
	"os/exec"
	"time"

	"github.com/holoplot/go-evdev"
)

// PowerButtonConfig describes the power key of a handheld.
type PowerButtonConfig struct {
	DevicePath      string
	ButtonCode      evdev.EvCode
	ShortPressMax   time.Duration // Longer presses shut down
	CoolDownTime    time.Duration // Presses right after a resume are ignored
	SuspendScript   string
	ShutdownCommand string
}

// PowerAction is what a completed press asks for.
type PowerAction int

const (
	PowerActionNone PowerAction = iota
	PowerActionSuspend
	PowerActionShutdown
)

func (c PowerButtonConfig) withDefaults() PowerButtonConfig {
	if c.ButtonCode == 0 {
		c.ButtonCode = evdev.KEY_POWER
	}
	if c.ShortPressMax == 0 {
		c.ShortPressMax = 2 * time.Second
	}
	if c.CoolDownTime == 0 {
		c.CoolDownTime = time.Second
	}
	return c
}

// powerPress tracks one key and classifies press durations.
type powerPress struct {
	cfg         PowerButtonConfig
	pressedAt   time.Time
	pressed     bool
	lastHandled time.Time
}

// observe feeds one key event (value 1 press, 0 release, 2 autorepeat).
func (p *powerPress) observe(value int32, at time.Time) PowerAction {
	switch value {
	case 1:
		if at.Sub(p.lastHandled) < p.cfg.CoolDownTime {
			return PowerActionNone
		}
		p.pressed = true
		p.pressedAt = at
	case 0:
		if !p.pressed {
			return PowerActionNone
		}
		p.pressed = false
		p.lastHandled = at
		if at.Sub(p.pressedAt) > p.cfg.ShortPressMax {
			return PowerActionShutdown
		}
		return PowerActionSuspend
	}
	return PowerActionNone
}

// RunPowerButtonHandler reads the power key until ctx is done. A short press
// runs the suspend script and a long press the shutdown command.
func RunPowerButtonHandler(ctx context.Context, cfg PowerButtonConfig) error {
	cfg = cfg.withDefaults()

	dev, err := evdev.Open(cfg.DevicePath)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		dev.Close()
	}()

	logger := GetInternalLogger()
	press := &powerPress{cfg: cfg}

	for {
		ev, err := dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if ev.Type != evdev.EV_KEY || ev.Code != cfg.ButtonCode {
			continue
		}

		switch press.observe(ev.Value, time.Now()) {
		case PowerActionSuspend:
			logger.Info("Power button short press, suspending")
			runCommand(ctx, cfg.SuspendScript)
			press.lastHandled = time.Now()
		case PowerActionShutdown:
			logger.Info("Power button long press, shutting down")
			runCommand(ctx, cfg.ShutdownCommand)
		}
	}
}

func runCommand(ctx context.Context, command string) {
	if command == "" {
		return
	}
	if err := exec.CommandContext(ctx, "/bin/sh", "-c", command).Run(); err != nil {
		GetInternalLogger().Error("Power command failed", "command", command, "error", err)
	}
}

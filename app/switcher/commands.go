package switcher

import (
	"fmt"
	"os/exec"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/nightswitch/app/debug"
	"github.com/umputun/nightswitch/app/enum"
)

// Spawner starts a process without waiting for it.
type Spawner interface {
	Spawn(argv []string) error
}

// NewCommands makes the "Command" switcher, running the "sunrise" or "sunset" command
// of the commands settings namespace when the time changes to day or night.
func NewCommands(tm Timer, cmdSettings Settings, sp Spawner, l *debug.Logger) *Switcher {
	return New(Params{
		Name:     "Command",
		Timer:    tm,
		Settings: cmdSettings,
		Callback: func(tod enum.TimeOfDay) {
			if !tod.Known() {
				return
			}
			command := cmdSettings.GetString(tod.Transition())
			if command == "" {
				return
			}
			if err := sp.Spawn([]string{"sh", "-c", command}); err != nil {
				log.Printf("[WARN] failed to spawn %s command: %v", tod.Transition(), err)
				return
			}
			l.Message(fmt.Sprintf("Spawned %s command.", tod))
		},
		Disableable: true,
		Log:         l,
	})
}

// ShellSpawner starts processes with os/exec, looking the executable up in PATH.
// Output is discarded and the process is reaped in background.
type ShellSpawner struct{}

// Spawn starts argv[0] with the rest of argv as arguments.
func (ShellSpawner) Spawn(argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("empty command")
	}
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return fmt.Errorf("can't find %s: %w", argv[0], err)
	}
	cmd := exec.Command(path, argv[1:]...) //nolint:gosec // runs user configured commands
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", argv[0], err)
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Printf("[DEBUG] spawned process %d exited: %v", cmd.Process.Pid, err)
		}
	}()
	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/oklog/run"

	"github.com/umputun/nightswitch/app/debug"
	"github.com/umputun/nightswitch/app/loop"
	"github.com/umputun/nightswitch/app/mqtt"
	"github.com/umputun/nightswitch/app/settings"
	"github.com/umputun/nightswitch/app/store"
	"github.com/umputun/nightswitch/app/switcher"
	"github.com/umputun/nightswitch/app/timer"
)

// SharedOptions contains options shared between all commands
type SharedOptions struct {
	DB    string `short:"d" long:"db" env:"NIGHTSWITCH_DB" default:"nightswitch.db" description:"settings database URL (sqlite file or postgres://...)"`
	Debug bool   `long:"dbg" env:"DEBUG" description:"debug mode"`
}

// RunCmd implements the run subcommand
type RunCmd struct {
	SharedOptions

	Timer struct {
		Interval time.Duration `long:"interval" env:"INTERVAL" default:"1m" description:"how often to recompute the time of day"`
	} `group:"timer" namespace:"timer" env-namespace:"NIGHTSWITCH_TIMER"`

	Watch struct {
		Interval time.Duration `long:"interval" env:"INTERVAL" default:"5s" description:"settings poll interval"`
	} `group:"watch" namespace:"watch" env-namespace:"NIGHTSWITCH_WATCH"`

	MQTT struct {
		Broker    string `long:"broker" env:"BROKER" description:"mqtt broker URL, enables mqtt switcher (e.g. tcp://localhost:1883)"`
		ClientID  string `long:"client-id" env:"CLIENT_ID" default:"nightswitch" description:"mqtt client id"`
		TopicRoot string `long:"topic-root" env:"TOPIC_ROOT" default:"nightswitch" description:"mqtt topic root"`
	} `group:"mqtt" namespace:"mqtt" env-namespace:"NIGHTSWITCH_MQTT"`

	ctx    context.Context
	cancel context.CancelFunc
	spawn  switcher.Spawner
}

// Execute runs the daemon until interrupted
func (r *RunCmd) Execute(_ []string) error {
	setupLogs(r.Debug)

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	if r.ctx == nil {
		r.ctx, r.cancel = context.WithCancel(context.Background())
		signals(r.cancel)
	}

	return r.run(r.ctx)
}

func (r *RunCmd) run(ctx context.Context) error {
	log.Printf("[INFO] starting %s, settings db %s", appName, r.DB)

	kvStore, err := store.New(r.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	cached, err := store.NewCached(kvStore, 100)
	if err != nil {
		_ = kvStore.Close()
		return fmt.Errorf("failed to initialize cache: %w", err)
	}
	defer cached.Close()

	root := settings.New(cached, settings.DefaultSchema, settings.RootNamespace)
	dbg := debug.New(appName, r.Debug || buildType == "debug")
	events := loop.New(64)
	tm := timer.New(timer.Params{Settings: root.Child("time"), Log: dbg})

	spawner := r.spawn
	if spawner == nil {
		spawner = switcher.ShellSpawner{}
	}
	switchers := []*switcher.Switcher{switcher.NewCommands(tm, root.Child("commands"), spawner, dbg)}

	if r.MQTT.Broker != "" {
		mc := mqtt.NewClient(r.MQTT.Broker, r.MQTT.ClientID, r.MQTT.TopicRoot)
		if err := mc.Connect(); err != nil {
			return fmt.Errorf("failed to connect to mqtt broker %s: %w", r.MQTT.Broker, err)
		}
		defer mc.Disconnect()
		log.Printf("[INFO] mqtt switcher enabled, broker %s", r.MQTT.Broker)
		switchers = append(switchers, switcher.NewMQTT(tm, root.Child("mqtt"), mc, dbg))
	}

	watcher := settings.NewWatcher(settings.WatcherParams{
		Store:    cached,
		Settings: root,
		Post:     events.Post,
		Interval: r.Watch.Interval,
		Path:     kvStore.SQLitePath(),
	})

	events.Post(func() {
		tm.Start()
		for _, sw := range switchers {
			sw.Enable()
		}
		log.Printf("[INFO] %d switcher(s) enabled, current time %s", len(switchers), tm.Time())
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var g run.Group
	g.Add(func() error { return events.Run(ctx) }, func(error) { cancel() })
	g.Add(func() error { return tm.Run(ctx, events.Post, r.Timer.Interval) }, func(error) { cancel() })
	g.Add(func() error { return watcher.Run(ctx) }, func(error) { cancel() })
	runErr := g.Run()

	// loop is stopped, tear down on this goroutine
	for _, sw := range switchers {
		sw.Disable()
	}
	tm.Stop()
	log.Printf("[INFO] %s stopped", appName)

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return fmt.Errorf("run failed: %w", runErr)
	}
	return nil
}

// GetCmd implements the get subcommand
type GetCmd struct {
	SharedOptions

	Args struct {
		Key string `positional-arg-name:"key" description:"full key or namespace prefix, all keys if empty"`
	} `positional-args:"yes"`

	out io.Writer
}

// Execute prints matching keys with their values, defaults marked
func (g *GetCmd) Execute(_ []string) error {
	setupLogs(g.Debug)
	out := g.out
	if out == nil {
		out = os.Stdout
	}

	kvStore, err := store.New(g.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer kvStore.Close()

	var found int
	for _, key := range settings.DefaultSchema.Keys() {
		if g.Args.Key != "" && key != g.Args.Key && !strings.HasPrefix(key, g.Args.Key+".") {
			continue
		}
		found++
		val, err := kvStore.Get(key)
		if errors.Is(err, store.ErrNotFound) {
			fmt.Fprintf(out, "%s = %v (default)\n", key, settings.DefaultSchema.Default(key))
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", key, err)
		}
		fmt.Fprintf(out, "%s = %s\n", key, val)
	}
	if found == 0 {
		return fmt.Errorf("unknown key %q", g.Args.Key)
	}
	return nil
}

// SetCmd implements the set subcommand
type SetCmd struct {
	SharedOptions

	Args struct {
		Key   string `positional-arg-name:"key" required:"true" description:"full key, e.g. nightswitch.commands.sunrise"`
		Value string `positional-arg-name:"value" required:"true" description:"new value"`
	} `positional-args:"yes"`
}

// Execute validates and stores the value; a running daemon picks it up through its watcher
func (s *SetCmd) Execute(_ []string) error {
	setupLogs(s.Debug)
	value, err := settings.DefaultSchema.Validate(s.Args.Key, s.Args.Value)
	if err != nil {
		return err
	}

	kvStore, err := store.New(s.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer kvStore.Close()

	ns, key := settings.Split(s.Args.Key)
	if err := settings.New(kvStore, settings.DefaultSchema, ns).SetString(key, value); err != nil {
		return err
	}
	log.Printf("[INFO] %s set to %q", s.Args.Key, value)
	return nil
}

// ResetCmd implements the reset subcommand
type ResetCmd struct {
	SharedOptions

	Args struct {
		Key string `positional-arg-name:"key" required:"true" description:"full key"`
	} `positional-args:"yes"`
}

// Execute removes the stored value so the key reads as its default
func (r *ResetCmd) Execute(_ []string) error {
	setupLogs(r.Debug)
	if _, ok := settings.DefaultSchema[r.Args.Key]; !ok {
		return fmt.Errorf("unknown key %q", r.Args.Key)
	}

	kvStore, err := store.New(r.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer kvStore.Close()

	ns, key := settings.Split(r.Args.Key)
	if err := settings.New(kvStore, settings.DefaultSchema, ns).Reset(key); err != nil {
		return err
	}
	log.Printf("[INFO] %s reset to default", r.Args.Key)
	return nil
}

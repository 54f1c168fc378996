package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/redis/go-redis/v9"

	"github.com/pagewatch/pagewatch/pkg/config"
	"github.com/pagewatch/pagewatch/pkg/crawler"
	"github.com/pagewatch/pagewatch/pkg/db"
	"github.com/pagewatch/pagewatch/pkg/extract"
	"github.com/pagewatch/pagewatch/pkg/lock"
	"github.com/pagewatch/pagewatch/pkg/notify"
	"github.com/pagewatch/pagewatch/pkg/queue"
	"github.com/pagewatch/pagewatch/pkg/scheduler"
	"github.com/pagewatch/pagewatch/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" default:"pagewatch.yml" description:"config file path"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		log.Printf("[ERROR] failed to load config: %v", err)
		os.Exit(1)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	setupLog(opts.Debug, opts.NoColor, cfg.Notify.Email.Password, cfg.Notify.Slack.Token, cfg.Redis.Password)

	log.Printf("[INFO] starting pagewatch version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, cfg, opts.Debug); err != nil {
		log.Printf("[ERROR] pagewatch failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires the application together and blocks until ctx is canceled
func run(ctx context.Context, cfg *config.Config, debug bool) error {
	database, err := db.New(db.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer database.Close()

	extractor := extract.New(cfg.Fetch.Timeout, cfg.Fetch.UserAgent)

	var emailSender, slackSender notify.Sender
	if cfg.Notify.Email.Enabled {
		emailSender = notify.NewEmailSender(notify.EmailConfig{
			Host:     cfg.Notify.Email.Host,
			Port:     cfg.Notify.Email.Port,
			Username: cfg.Notify.Email.Username,
			Password: cfg.Notify.Email.Password,
			From:     cfg.Notify.Email.From,
			TLS:      cfg.Notify.Email.TLS,
			StartTLS: cfg.Notify.Email.StartTLS,
			Timeout:  cfg.Notify.Email.Timeout,
		})
	}
	if cfg.Notify.Slack.Enabled {
		slackSender = notify.NewSlackSender(cfg.Notify.Slack.Token)
	}
	dispatcher := notify.NewDispatcher(emailSender, slackSender, database, cfg.Limits.MaxDetailLen)

	// redis backs the task queue and distributed locks, without it the
	// scheduler executes crawls inline with local locks
	var redisClient *redis.Client
	var locker crawler.Locker = lock.NewLocalManager()
	var tickLock scheduler.TickLock = lock.NewLocal()
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis ping: %w", err)
		}
		defer redisClient.Close()

		locker = lock.NewManager(redisClient, "pagewatch:lock:", 0)
		tickLock = lock.New(redisClient, "pagewatch:lock:tick", lock.Config{
			TTL:     cfg.Schedule.LockAtMost,
			MinHold: cfg.Schedule.LockAtLeast,
		})
		log.Printf("[INFO] redis connected at %s", cfg.Redis.Addr)
	} else {
		log.Printf("[INFO] redis not configured, running single-instance mode")
	}

	executor := crawler.NewExecutor(database, database, extractor, dispatcher, locker, crawler.Config{
		FetchTimeout: cfg.Fetch.Timeout,
		MaxValueLen:  cfg.Limits.MaxValueLen,
		MaxErrorLen:  cfg.Limits.MaxErrorLen,
		MaxDetailLen: cfg.Limits.MaxDetailLen,
	})

	var publisher scheduler.Publisher
	var workers *queue.Workers
	if redisClient != nil && !cfg.Schedule.Direct {
		tasks := queue.New(redisClient, cfg.Redis.QueueKey)
		publisher = tasks
		workers = queue.NewWorkers(tasks, executor, cfg.Schedule.Workers)
		workers.Start(ctx)
		defer workers.Stop()
	}

	sched := scheduler.New(database, tickLock, publisher, executor, scheduler.Config{Tick: cfg.Schedule.Tick})
	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(server.Config{
		Listen:  cfg.Server.Listen,
		Timeout: cfg.Server.Timeout,
	}, database, executor, revision, debug)

	return srv.Run(ctx)
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = append(logOpts, lgr.Debug)
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}

	secrets := make([]string, 0, len(secs))
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}

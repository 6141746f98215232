package bootstrap

import (
	"context"
	"crypto/tls"
	"database/sql"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/mindwell/voicedesk/internal/compliance"
	appconfig "github.com/mindwell/voicedesk/internal/config"
	"github.com/mindwell/voicedesk/internal/directory"
	"github.com/mindwell/voicedesk/internal/directory/cliniko"
	"github.com/mindwell/voicedesk/internal/notify"
	"github.com/mindwell/voicedesk/internal/practice"
	"github.com/mindwell/voicedesk/pkg/logging"
)

// BuildRedisClient returns a configured Redis client or nil when disabled.
// When verify is true, a ping is issued and failures return nil.
func BuildRedisClient(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger, verify bool) *redis.Client {
	if cfg == nil || strings.TrimSpace(cfg.RedisAddr) == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	redisOptions := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		redisOptions.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(redisOptions)
	if !verify {
		return client
	}
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis not available", "error", err)
		return nil
	}
	return client
}

// BuildPracticeStore wires the Redis-backed practice configuration
// store over the environment defaults. Works with a nil Redis client;
// the store then always serves defaults.
func BuildPracticeStore(redisClient *redis.Client, cfg *appconfig.Config, logger *logging.Logger) *practice.Store {
	defaults := practice.Defaults()
	if cfg != nil {
		if cfg.PracticeName != "" {
			defaults.Name = cfg.PracticeName
		}
		if cfg.PracticeTimezone != "" {
			defaults.Timezone = cfg.PracticeTimezone
		}
		if cfg.CrisisLine != "" {
			defaults.Contact.CrisisLine = cfg.CrisisLine
		}
	}
	return practice.NewStore(redisClient, defaults, logger)
}

// BuildDirectoryClient returns the practice-management client, or nil
// when the integration isn't configured.
func BuildDirectoryClient(cfg *appconfig.Config, logger *logging.Logger) directory.Client {
	if cfg == nil || cfg.DirectoryBaseURL == "" || cfg.DirectoryAPIKey == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}

	client, err := cliniko.New(cliniko.Config{
		BaseURL: cfg.DirectoryBaseURL,
		APIKey:  cfg.DirectoryAPIKey,
		Timeout: cfg.DirectoryTimeout,
	})
	if err != nil {
		logger.Warn("directory client not available", "error", err)
		return nil
	}
	logger.Info("directory client configured", "base_url", cfg.DirectoryBaseURL)
	return client
}

// BuildAuditService returns the compliance audit service when a
// database handle is available.
func BuildAuditService(sqlDB *sql.DB) *compliance.AuditService {
	if sqlDB == nil {
		return nil
	}
	return compliance.NewAuditService(sqlDB)
}

// BuildSMSSender returns the Twilio sender when credentials are set,
// otherwise a logging stub so confirmations degrade gracefully.
func BuildSMSSender(cfg *appconfig.Config, logger *logging.Logger) notify.SMSSender {
	if cfg == nil || cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" {
		return notify.NewStubSMSSender(logger)
	}
	return notify.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber, logger)
}

// BuildEmailSender returns the SendGrid sender when an API key is set,
// otherwise a logging stub.
func BuildEmailSender(cfg *appconfig.Config, logger *logging.Logger) notify.EmailSender {
	if cfg == nil || cfg.SendGridAPIKey == "" {
		return notify.NewStubEmailSender(logger)
	}
	return notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
		FromName:  cfg.SendGridFromName,
	}, logger)
}

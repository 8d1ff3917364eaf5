// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/canonical/onboarding-service/internal/authgateway"
	"github.com/canonical/onboarding-service/internal/authorization"
	"github.com/canonical/onboarding-service/internal/config"
	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/mail"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/monitoring/prometheus"
	"github.com/canonical/onboarding-service/internal/openfga"
	"github.com/canonical/onboarding-service/internal/storage"
	"github.com/canonical/onboarding-service/internal/tracing"
	"github.com/canonical/onboarding-service/internal/types"
	"github.com/canonical/onboarding-service/internal/uaa"
	"github.com/canonical/onboarding-service/pkg/access"
	"github.com/canonical/onboarding-service/pkg/authentication"
	"github.com/canonical/onboarding-service/pkg/invitations"
	"github.com/canonical/onboarding-service/pkg/orgs"
	"github.com/canonical/onboarding-service/pkg/registrations"
	"github.com/canonical/onboarding-service/pkg/securitycode"
	"github.com/canonical/onboarding-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func newStores(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (securitycode.StoreInterface, access.StoreInterface, error) {
	if specs.StoreBackend != "redis" {
		return storage.NewMemoryStore[types.SecurityCode](), storage.NewMemoryStore[types.AccessInvitations](), nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     specs.RedisAddr,
		Password: specs.RedisPassword,
		DB:       specs.RedisDB,
	})

	var codeCodec storage.Codec[types.SecurityCode] = storage.NewJSONCodec[types.SecurityCode]()
	var accessCodec storage.Codec[types.AccessInvitations] = storage.NewJSONCodec[types.AccessInvitations]()

	if specs.StoreCipherKey != "" {
		var err error
		if codeCodec, err = storage.NewSecureCodec(codeCodec, specs.StoreCipherKey); err != nil {
			return nil, nil, fmt.Errorf("failed to set up code encryption: %w", err)
		}
		if accessCodec, err = storage.NewSecureCodec(accessCodec, specs.StoreCipherKey); err != nil {
			return nil, nil, fmt.Errorf("failed to set up access record encryption: %w", err)
		}
	}

	codeStore := storage.NewRedisStore(redisClient, "onboarding:security-codes", codeCodec, tracer, monitor, logger)
	accessStore := storage.NewRedisStore(redisClient, "onboarding:access-invitations", accessCodec, tracer, monitor, logger)

	// the access store is keyed by invitee email and never scanned, so
	// its keys can be hashed; the code store needs key enumeration
	if specs.StoreHashSalt != "" {
		return codeStore, storage.NewHashedKeyStore[types.AccessInvitations](accessStore, specs.StoreHashSalt), nil
	}

	return codeStore, accessStore, nil
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("onboarding-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	codeStore, accessStore, err := newStores(specs, tracer, monitor, logger)
	if err != nil {
		return err
	}
	logger.Infof("Using %s store backend", specs.StoreBackend)

	var authorizer *authorization.Authorizer
	if specs.AuthorizationEnabled {
		ofga := openfga.NewClient(
			openfga.NewConfig(
				specs.OpenfgaApiScheme,
				specs.OpenfgaApiHost,
				specs.OpenfgaStoreId,
				specs.OpenfgaApiToken,
				specs.OpenfgaModelId,
				specs.Debug,
				tracer,
				monitor,
				logger,
			),
		)
		authorizer = authorization.NewAuthorizer(ofga, tracer, monitor, logger)
		logger.Info("Authorization is enabled")
	} else {
		authorizer = authorization.NewAuthorizer(openfga.NewNoopClient(), tracer, monitor, logger)
		logger.Info("Using noop authorizer")
	}

	identity, err := uaa.NewClient(
		&uaa.Config{
			URL:          specs.UaaURL,
			ClientID:     specs.UaaClientID,
			ClientSecret: specs.UaaClientSecret,
		},
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return fmt.Errorf("failed to set up the identity store client: %w", err)
	}

	gateway := authgateway.NewClient(
		&authgateway.Config{
			URL:            specs.AuthGatewayURL,
			ConnectTimeout: specs.AuthGatewayConnectTimeout,
			ReadTimeout:    specs.AuthGatewayReadTimeout,
		},
		tracer,
		monitor,
		logger,
	)

	dispatcher, err := mail.NewDispatcher(
		mail.Config{
			Host:     specs.SMTPHost,
			Port:     specs.SMTPPort,
			Username: specs.SMTPUsername,
			Password: specs.SMTPPassword,
			TLS:      specs.SMTPTLS,
			From:     specs.SMTPFrom,
		},
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create mail dispatcher: %w", err)
	}

	codesService := securitycode.NewService(codeStore, tracer, monitor, logger)
	accessService := access.NewService(accessStore, tracer, monitor, logger)

	invitationsService := invitations.NewService(
		codesService,
		accessService,
		identity,
		gateway,
		dispatcher,
		specs.ConsoleURL,
		tracer,
		monitor,
		logger,
	)

	registrationsService := registrations.NewService(
		invitationsService,
		codesService,
		accessService,
		authorizer,
		registrations.NewPasswordValidator(specs.MinPasswordChars),
		specs.DefaultOrgID,
		tracer,
		monitor,
		logger,
	)

	orgsService := orgs.NewService(
		types.Org{ID: specs.DefaultOrgID, Name: specs.DefaultOrgName},
		authorizer,
		identity,
		gateway,
		tracer,
		monitor,
		logger,
	)

	var verifier authentication.TokenVerifierInterface
	if specs.AuthenticationEnabled {
		verifier, err = authentication.NewJWTAuthenticator(
			context.Background(),
			specs.OIDCIssuer,
			specs.JWKSURL,
			specs.AllowedSubjects,
			specs.AdminScope,
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to set up JWT authentication: %w", err)
		}
	} else {
		logger.Info("Authentication is disabled, admin endpoints are open")
	}

	router := web.NewRouter(
		invitations.NewAPI(invitationsService, accessService, specs.ForbiddenDomains, specs.DefaultOrgID, tracer, monitor, logger),
		registrations.NewAPI(registrationsService, tracer, monitor, logger),
		orgs.NewAPI(orgsService, tracer, monitor, logger),
		verifier,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

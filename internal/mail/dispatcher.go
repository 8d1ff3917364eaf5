// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/canonical/onboarding-service/internal/logging"
	"github.com/canonical/onboarding-service/internal/monitoring"
	"github.com/canonical/onboarding-service/internal/tracing"
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	TLS      bool
	From     string
}

type Dispatcher struct {
	client *gomail.Client
	from   string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (d *Dispatcher) Send(ctx context.Context, to, subject, htmlBody string) error {
	ctx, span := d.tracer.Start(ctx, "mail.Dispatcher.Send")
	defer span.End()

	msg := gomail.NewMsg()
	if err := msg.From(d.from); err != nil {
		return fmt.Errorf("unable to set sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("unable to set recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlBody)

	if err := d.client.DialAndSendWithContext(ctx, msg); err != nil {
		d.logger.Errorf("failed to deliver mail to %s: %s", to, err)
		return err
	}

	d.logger.Debugf("delivered mail to %s", to)
	return nil
}

func NewDispatcher(config Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Dispatcher, error) {
	opts := []gomail.Option{
		gomail.WithPort(config.Port),
	}
	if config.Username != "" && config.Password != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(config.Username),
			gomail.WithPassword(config.Password),
		)
	}
	if config.TLS {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.NoTLS))
	}

	client, err := gomail.NewClient(config.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to construct mail client: %w", err)
	}

	d := new(Dispatcher)
	d.client = client
	d.from = config.From
	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var structValidator = validator.New()

// validate checks the client config struct tags and maps the first failing
// group onto its sentinel error.
func (cfg *ClientConfig) validate() error {
	err := structValidator.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("error validating config: %w", err)
	}

	fe := fieldErrs[0]
	switch {
	case strings.HasPrefix(fe.Namespace(), "ClientConfig.App."):
		return fmt.Errorf("%w: %s failed %q", ErrInvalidAppConfigs, fe.Field(), fe.Tag())
	case strings.HasPrefix(fe.Namespace(), "ClientConfig.UI."):
		return fmt.Errorf("%w: %s failed %q", ErrInvalidUIConfigs, fe.Field(), fe.Tag())
	default:
		return fmt.Errorf("error validating config: %w", err)
	}
}

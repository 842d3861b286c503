package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidateConfig validates the entire configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	// Validate general config
	if c.General == nil {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "general",
			Message:   "configuration must contain 'general' section",
		})
		return validationErrors
	}

	// Use validator to validate General config
	if err := validate.Struct(c.General); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "general", "")...)
	}

	validationErrors = append(validationErrors, c.validateExtensions()...)

	if c.API != nil {
		if err := validate.Struct(c.API); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, "api", "")...)
		}
	}

	if c.DNS != nil {
		if err := validate.Struct(c.DNS); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, "dns", "")...)
		}
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

func (c *Config) validateExtensions() ValidationErrors {
	var validationErrors ValidationErrors

	// Track duplicates
	seenNames := make(map[string]bool)

	for i, ext := range c.General.Extensions {
		itemName := ext
		if itemName == "" {
			itemName = fmt.Sprintf("extensions[%d]", i)
		}

		if ext == "" {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: "general.extensions",
				Message:   "extension name cannot be empty",
			})
			continue
		}

		// Extension names are directory names under extensions_dir
		if strings.ContainsAny(ext, `/\`) {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: "general.extensions",
				Message:   fmt.Sprintf("extension name must not contain path separators: %s", ext),
			})
		}

		if seenNames[ext] {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: "general.extensions",
				Message:   fmt.Sprintf("duplicate extension: %s", ext),
			})
		}
		seenNames[ext] = true
	}

	return validationErrors
}

// ValidateSourcesPresent checks that the configured data directory exists.
// This is separate from structural validation: a missing whitelist or
// blacklist degrades gracefully, but a missing data directory means there
// is nothing to merge at all.
func (c *Config) ValidateSourcesPresent() error {
	dataDir := c.GetAbsDataDir()
	if stat, err := os.Stat(dataDir); err != nil {
		return fmt.Errorf("data directory does not exist: %s", dataDir)
	} else if !stat.IsDir() {
		return fmt.Errorf("data directory is not a directory: %s", dataDir)
	}
	return nil
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error, fieldPrefix string, itemName string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				// e.Field() returns the TOML tag name because we registered TagNameFunc
				fieldName := e.Field()

				if fieldPrefix != "" {
					fieldPath = fieldPrefix + "." + fieldName
				} else {
					fieldPath = fieldName
				}
			}

			message := getValidationMessage(e)

			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: fieldPath,
				Message:   message,
			})
		}
	}

	return validationErrors
}

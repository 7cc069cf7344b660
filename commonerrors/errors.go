/*
 * Copyright (C) 2020-2024 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package commonerrors defines typical errors which can happen.
// Note: overflows and underflows detected by the bounded operations are reported as flags and never as errors.
package commonerrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

var (
	ErrNoLogger       = errors.New("missing logger")
	ErrNoLoggerSource = errors.New("missing logger source")
	ErrNoLogSource    = errors.New("missing log source")
	ErrUndefined      = errors.New("undefined")
	ErrInvalid        = errors.New("invalid")
	ErrUnsupported    = errors.New("unsupported")
	ErrUnexpected     = errors.New("unexpected")
	ErrEmpty          = errors.New("empty")
)

// Any determines whether the target error is of the same type as any of the errors `err`
func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None determines whether the target error is of none of the types of the errors `err`
func None(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return false
		}
	}
	return true
}

// CorrespondTo determines whether a `target` error corresponds to a specific error described by `description`
// It will check whether the error contains the string in its description.
func CorrespondTo(target error, description ...string) bool {
	if target == nil {
		return false
	}
	desc := strings.ToLower(target.Error())
	for _, d := range description {
		if strings.Contains(desc, strings.ToLower(d)) {
			return true
		}
	}
	return false
}

// New is similar to errors.New or fmt.Errorf but creates an error of type targetErr
func New(targetErr error, msg string) error {
	if targetErr == nil {
		return errors.New(msg)
	}
	return fmt.Errorf("%w: %v", targetErr, msg)
}

// Newf is similar to New but allows to format the message.
func Newf(targetErr error, msgFormat string, args ...any) error {
	return New(targetErr, fmt.Sprintf(msgFormat, args...))
}

// WrapError wraps an error into a particular targetError. However, if the original error has to do with a contextual error (i.e. cancelled or timeout), the original error will be kept.
func WrapError(targetError, originalError error, msg string) error {
	if originalError == nil {
		return New(targetError, msg)
	}
	if targetError == nil {
		targetError = ErrUnexpected
	}
	if msg == "" {
		return fmt.Errorf("%w: %v", targetError, originalError.Error())
	}
	return fmt.Errorf("%w: %v: %v", targetError, msg, originalError.Error())
}

// WrapErrorf is similar to WrapError but allows to format the message.
func WrapErrorf(targetError, originalError error, msgFormat string, args ...any) error {
	return WrapError(targetError, originalError, fmt.Sprintf(msgFormat, args...))
}

// Join returns an error aggregating all the non-nil errors provided. It returns nil if there are none.
func Join(errs ...error) error {
	var result *multierror.Error
	for _, err := range errs {
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

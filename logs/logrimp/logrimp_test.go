package logrimp

import (
	"bytes"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/go-logr/logr"
	"github.com/hashicorp/go-hclog"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ARM-software/numeric-overflow/commonerrors"
)

func TestLoggerImplementations(t *testing.T) {
	zl, err := zap.NewDevelopment()
	require.NoError(t, err)
	var buf bytes.Buffer
	tests := []struct {
		Logger logr.Logger
		name   string
	}{
		{
			Logger: NewNoopLogger(),
			name:   "NoOp",
		},
		{
			Logger: NewStdLogr(&buf, 0),
			name:   "Standard",
		},
		{
			Logger: NewZapLogger(zl),
			name:   "Zap",
		},
		{
			Logger: NewHclogLogger(hclog.New(nil)),
			name:   "HClog",
		},
		{
			Logger: NewLogrusLogger(logrus.New()),
			name:   "Logrus",
		},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.name, func(t *testing.T) {
			logger := test.Logger
			logger.WithName(faker.Name()).WithValues("domain", "int8").Info(faker.Sentence())
			logger.Error(commonerrors.ErrUnexpected, faker.Sentence(), faker.Word(), faker.Name())
		})
	}
}

func TestNewStdLogr(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStdLogr(&buf, 0)
	msg := faker.Sentence()
	logger.WithName("numeric-overflow").Info(msg, "domain", "uint8")
	assert.Contains(t, buf.String(), msg)
	assert.Contains(t, buf.String(), "numeric-overflow")
	assert.Contains(t, buf.String(), "uint8")
}

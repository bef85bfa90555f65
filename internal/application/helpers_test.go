package application

import (
	"time"

	"github.com/stretchr/testify/mock"
)

var testEpoch = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func mockAnyContext() interface{} {
	return mock.Anything
}

func boolPtr(v bool) *bool {
	return &v
}

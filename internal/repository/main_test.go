//go:build integration
// +build integration

package repository

import (
	"os"
	"testing"

	"lead-crm-backend/internal/testutils"
)

func TestMain(m *testing.M) {
	os.Exit(testutils.RunMain(m))
}

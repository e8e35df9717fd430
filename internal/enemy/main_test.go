package enemy

import (
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	_ = MustLoadRoster("../../enemies.yaml")
	os.Exit(m.Run())
}

package flight_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestFlight(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Flight Suite")
}

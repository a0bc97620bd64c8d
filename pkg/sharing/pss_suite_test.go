package sharing_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestSharingSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Packed Sharing Property Suite")
}

package sharing_test

import (
	"crypto/rand"
	"testing/quick"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/luxfi/pss/pkg/math/gf"
	"github.com/luxfi/pss/pkg/sharing"
)

var _ = Describe("Packed Sharing Property Tests", func() {
	var f *gf.Field

	BeforeEach(func() {
		var err error
		f, err = gf.Init(8)
		Expect(err).NotTo(HaveOccurred())
	})

	It("round-trips arbitrary secrets for any valid (n, d, l) configuration", func() {
		property := func(nRaw, dRaw, lRaw uint8, secretSeed uint32) bool {
			n := uint32(nRaw%12) + 3 // n in [3, 14]
			d := uint32(dRaw) % n    // d in [0, n-1], so np = d+1 <= n
			l := uint32(lRaw%4) + 1  // l in [1, 4]
			if d+1 < l {
				d = l - 1 // ensure np >= l so share_coeffs has nonnegative pad count
			}

			pos := sharing.DefaultPos(f, n, l)
			ps, err := sharing.New(f, d, n, pos)
			if err != nil {
				return true // skip configurations New itself rejects
			}

			secrets := make([]gf.Element, l)
			for i := range secrets {
				secrets[i] = f.FromUint32(secretSeed + uint32(i))
			}

			shares, err := ps.Share(secrets, rand.Reader)
			if err != nil {
				return false
			}
			got, err := ps.SemihonRecon(shares)
			if err != nil {
				return false
			}
			for i := range secrets {
				if got[i] != secrets[i] {
					return false
				}
			}

			gotChecked, err := ps.Recon(shares)
			if err != nil {
				return false
			}
			for i := range secrets {
				if gotChecked[i] != secrets[i] {
					return false
				}
			}
			return true
		}

		Expect(quick.Check(property, &quick.Config{MaxCount: 100})).To(Succeed())
	})

	It("detects a single tampered share whenever n - np >= 1", func() {
		property := func(nRaw, extraRaw uint8, secretSeed uint32) bool {
			n := uint32(nRaw%10) + 4    // n in [4, 13]
			extra := uint32(extraRaw%3) + 1 // ensure n - np >= 1
			if extra >= n {
				return true
			}
			d := n - extra - 1 // np = n - extra

			pos := sharing.DefaultPos(f, n, 1)
			ps, err := sharing.New(f, d, n, pos)
			if err != nil {
				return true
			}

			secrets := []gf.Element{f.FromUint32(secretSeed)}
			shares, err := ps.Share(secrets, rand.Reader)
			if err != nil {
				return false
			}

			shares[0] = f.Add(shares[0], f.One())
			_, err = ps.Recon(shares)
			return err != nil
		}

		Expect(quick.Check(property, &quick.Config{MaxCount: 50})).To(Succeed())
	})
})

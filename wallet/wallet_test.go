package wallet_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vaultsig/vaultsig/wallet"
)

const (
	signerA = "0x1111111111111111111111111111111111111111"
	signerB = "0x2222222222222222222222222222222222222222"
	signerC = "0x3333333333333333333333333333333333333333"
)

func writeWalletsFile(t *testing.T, content string) string {
	req := require.New(t)
	testDir := "/tmp/vaultsig_test_Wallets_" + t.Name()
	req.NoError(os.MkdirAll(testDir, 0755))
	t.Cleanup(func() { os.RemoveAll(testDir) })

	path := filepath.Join(testDir, "wallets.json")
	req.NoError(os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestProvider_GetWallet(t *testing.T) {
	req := require.New(t)

	path := writeWalletsFile(t, `{
		"wallets": [
			{
				"name": "treasury",
				"signers": ["`+signerA+`", "`+signerB+`", "`+signerC+`"],
				"required_signatures": 2,
				"predicate_version": "v1",
				"predicate_params": {"salt": "0x01"}
			},
			{
				"name": "payroll",
				"signers": ["`+signerA+`"],
				"required_signatures": 1,
				"predicate_version": "v1"
			}
		]
	}`)

	provider, err := wallet.NewProvider(path)
	req.NoError(err)

	w, err := provider.GetWallet("treasury")
	req.NoError(err)
	req.Equal(2, w.RequiredSignatures)
	req.Len(w.SignerAddresses, 3)
	req.True(w.IsSigner(signerB))
	req.False(w.IsSigner("0x4444444444444444444444444444444444444444"))

	_, err = provider.GetWallet("unknown")
	req.ErrorIs(err, wallet.ErrWalletNotFound)

	wallets := provider.Wallets()
	req.Len(wallets, 2)
	req.Equal("payroll", wallets[0].Name)
	req.Equal("treasury", wallets[1].Name)
}

func TestProvider_RejectsThresholdAboveSignerCount(t *testing.T) {
	req := require.New(t)

	path := writeWalletsFile(t, `{
		"wallets": [{
			"name": "treasury",
			"signers": ["`+signerA+`", "`+signerB+`"],
			"required_signatures": 3,
			"predicate_version": "v1"
		}]
	}`)

	_, err := wallet.NewProvider(path)
	req.Error(err)
	req.Contains(err.Error(), "cannot exceed the signer set size")
}

func TestProvider_RejectsZeroThreshold(t *testing.T) {
	req := require.New(t)

	path := writeWalletsFile(t, `{
		"wallets": [{
			"name": "treasury",
			"signers": ["`+signerA+`"],
			"required_signatures": 0,
			"predicate_version": "v1"
		}]
	}`)

	_, err := wallet.NewProvider(path)
	req.Error(err)
	req.Contains(err.Error(), "required_signatures")
}

func TestProvider_RejectsMalformedAddress(t *testing.T) {
	req := require.New(t)

	path := writeWalletsFile(t, `{
		"wallets": [{
			"name": "treasury",
			"signers": ["not-an-address"],
			"required_signatures": 1,
			"predicate_version": "v1"
		}]
	}`)

	_, err := wallet.NewProvider(path)
	req.Error(err)
	req.Contains(err.Error(), "invalid signer address")
}

func TestProvider_RejectsDuplicateSigner(t *testing.T) {
	req := require.New(t)

	path := writeWalletsFile(t, `{
		"wallets": [{
			"name": "treasury",
			"signers": ["`+signerA+`", "`+signerA+`"],
			"required_signatures": 1,
			"predicate_version": "v1"
		}]
	}`)

	_, err := wallet.NewProvider(path)
	req.Error(err)
	req.Contains(err.Error(), "duplicate signer address")
}

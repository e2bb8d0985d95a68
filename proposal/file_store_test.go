package proposal_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/vaultsig/vaultsig/proposal"
)

func testProposal() *proposal.PendingProposal {
	p := &proposal.PendingProposal{
		SchemaVersion: proposal.SchemaVersion,
		ID:            "a2c8e7e6-7b6e-4c8f-9f93-0d2f3f4b6c1a",
		WalletName:    "treasury",
		NetworkName:   "testnet",
		SigningHash:   "0xdeadbeef",
		Intent: proposal.TransactionIntent{
			Recipient: "0x4444444444444444444444444444444444444444",
			Amount:    "1250.5",
		},
		CreatedAt:          time.Now().UTC().Truncate(time.Second),
		RequiredSignatures: 2,
	}
	p.Signatures.Add(proposal.SignatureEntry{Signer: signerB, Signature: "bb"})
	p.Signatures.Add(proposal.SignatureEntry{Signer: signerA, Signature: "aa"})
	return p
}

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	var (
		req     = require.New(t)
		testDir = "/tmp/vaultsig_test_FileStoreRoundTrip"
	)
	req.NoError(os.MkdirAll(testDir, 0755))
	defer os.RemoveAll(testDir)

	store := proposal.NewFileStore(filepath.Join(testDir, "pending_transaction.json"))

	saved := testProposal()
	req.NoError(store.Save(saved))

	loaded, err := store.Load()
	req.NoError(err)

	diff := cmp.Diff(saved, loaded, cmp.AllowUnexported(proposal.SignatureSet{}))
	req.Empty(diff)

	// Insertion order must survive the round trip.
	all := loaded.Signatures.All()
	req.Equal(signerB, all[0].Signer)
	req.Equal(signerA, all[1].Signer)
}

func TestFileStore_LoadMissing(t *testing.T) {
	var (
		req     = require.New(t)
		testDir = "/tmp/vaultsig_test_FileStoreMissing"
	)
	req.NoError(os.MkdirAll(testDir, 0755))
	defer os.RemoveAll(testDir)

	store := proposal.NewFileStore(filepath.Join(testDir, "pending_transaction.json"))

	_, err := store.Load()
	req.ErrorIs(err, proposal.ErrNoPendingProposal)

	exists, err := store.Exists()
	req.NoError(err)
	req.False(exists)
}

func TestFileStore_ExistsAndDelete(t *testing.T) {
	var (
		req     = require.New(t)
		testDir = "/tmp/vaultsig_test_FileStoreDelete"
	)
	req.NoError(os.MkdirAll(testDir, 0755))
	defer os.RemoveAll(testDir)

	store := proposal.NewFileStore(filepath.Join(testDir, "pending_transaction.json"))

	// Deleting an empty slot is a no-op, not an error.
	req.NoError(store.Delete())

	req.NoError(store.Save(testProposal()))
	exists, err := store.Exists()
	req.NoError(err)
	req.True(exists)

	req.NoError(store.Delete())
	exists, err = store.Exists()
	req.NoError(err)
	req.False(exists)
}

func TestFileStore_NoTempFileLeftBehind(t *testing.T) {
	var (
		req     = require.New(t)
		testDir = "/tmp/vaultsig_test_FileStoreTemp"
	)
	req.NoError(os.MkdirAll(testDir, 0755))
	defer os.RemoveAll(testDir)

	path := filepath.Join(testDir, "pending_transaction.json")
	store := proposal.NewFileStore(path)
	req.NoError(store.Save(testProposal()))

	_, err := os.Stat(path + ".tmp")
	req.True(os.IsNotExist(err))
}

func TestFileStore_DedupsHandEditedSignatures(t *testing.T) {
	var (
		req     = require.New(t)
		testDir = "/tmp/vaultsig_test_FileStoreHandEdited"
	)
	req.NoError(os.MkdirAll(testDir, 0755))
	defer os.RemoveAll(testDir)

	// The record is plain JSON an operator can edit by hand; a duplicated
	// signer must not count twice towards the threshold.
	path := filepath.Join(testDir, "pending_transaction.json")
	req.NoError(os.WriteFile(path, []byte(`{
		"schema_version": 1,
		"id": "a2c8e7e6-7b6e-4c8f-9f93-0d2f3f4b6c1a",
		"wallet": "treasury",
		"network": "testnet",
		"signing_hash": "0xdeadbeef",
		"intent": {"recipient": "0x4444444444444444444444444444444444444444", "amount": "1250.5"},
		"created_at": "2026-08-27T10:00:00Z",
		"required_signatures": 2,
		"signatures": [
			{"signer": "`+signerA+`", "signature": "aa"},
			{"signer": "`+signerA+`", "signature": "aa"}
		]
	}`), 0644))

	store := proposal.NewFileStore(path)
	loaded, err := store.Load()
	req.NoError(err)

	req.Equal(1, loaded.Signatures.UniqueCount())
	req.False(loaded.ReadyToSend())
	req.Equal(proposal.StateSigning, loaded.State())
}

func TestFileStore_RejectsUnknownSchemaVersion(t *testing.T) {
	var (
		req     = require.New(t)
		testDir = "/tmp/vaultsig_test_FileStoreSchema"
	)
	req.NoError(os.MkdirAll(testDir, 0755))
	defer os.RemoveAll(testDir)

	path := filepath.Join(testDir, "pending_transaction.json")
	req.NoError(os.WriteFile(path, []byte(`{"schema_version": 99, "signatures": []}`), 0644))

	store := proposal.NewFileStore(path)
	_, err := store.Load()
	req.Error(err)
	req.Contains(err.Error(), "unsupported proposal schema version")
}

package proposal_test

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/vaultsig/vaultsig/proposal"
)

func TestLevelDBStore_SaveLoadRoundTrip(t *testing.T) {
	var (
		req    = require.New(t)
		dbPath = "/tmp/vaultsig_test_LevelDBRoundTrip"
	)
	defer os.RemoveAll(dbPath)

	store, err := proposal.NewLevelDBStore(dbPath)
	req.NoError(err)
	defer store.Close()

	saved := testProposal()
	req.NoError(store.Save(saved))

	loaded, err := store.Load()
	req.NoError(err)

	diff := cmp.Diff(saved, loaded, cmp.AllowUnexported(proposal.SignatureSet{}))
	req.Empty(diff)
}

func TestLevelDBStore_LoadMissing(t *testing.T) {
	var (
		req    = require.New(t)
		dbPath = "/tmp/vaultsig_test_LevelDBMissing"
	)
	defer os.RemoveAll(dbPath)

	store, err := proposal.NewLevelDBStore(dbPath)
	req.NoError(err)
	defer store.Close()

	_, err = store.Load()
	req.ErrorIs(err, proposal.ErrNoPendingProposal)

	exists, err := store.Exists()
	req.NoError(err)
	req.False(exists)
}

func TestLevelDBStore_ExistsAndDelete(t *testing.T) {
	var (
		req    = require.New(t)
		dbPath = "/tmp/vaultsig_test_LevelDBDelete"
	)
	defer os.RemoveAll(dbPath)

	store, err := proposal.NewLevelDBStore(dbPath)
	req.NoError(err)
	defer store.Close()

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

func TestLevelDBStore_SaveOverwritesSlot(t *testing.T) {
	var (
		req    = require.New(t)
		dbPath = "/tmp/vaultsig_test_LevelDBOverwrite"
	)
	defer os.RemoveAll(dbPath)

	store, err := proposal.NewLevelDBStore(dbPath)
	req.NoError(err)
	defer store.Close()

	first := testProposal()
	req.NoError(store.Save(first))

	second := testProposal()
	second.ID = "f6a0cd1e-3d4b-44bb-95a8-5f3e14c2c9d0"
	second.Signatures = proposal.SignatureSet{}
	req.NoError(store.Save(second))

	loaded, err := store.Load()
	req.NoError(err)
	req.Equal(second.ID, loaded.ID)
	req.Equal(0, loaded.Signatures.UniqueCount())
}

// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-shamir.
//
// go-shamir is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/jeremyhahn/go-shamir/pkg/shamir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSplit(t *testing.T, secret []byte) (*shamir.SchemeParameters, []*shamir.Share) {
	t.Helper()

	params, err := shamir.NewSchemeParameters(2, 3, shamir.DefaultModulus())
	require.NoError(t, err)

	scheme, err := shamir.New(params)
	require.NoError(t, err)

	shares, err := scheme.Split(secret, nil)
	require.NoError(t, err)

	return params, shares
}

func TestShareFileRoundTrip(t *testing.T) {
	secret := []byte("round-trip-secret")
	params, shares := newTestSplit(t, secret)
	group := uuid.New()
	dir := t.TempDir()

	paths := make([]string, len(shares))
	for i, share := range shares {
		shareFile := NewShareFile(group, params, share)
		paths[i] = filepath.Join(dir, shareFile.Group+"-share-"+shareFile.Owner+".yaml")
		require.NoError(t, shareFile.Write(paths[i]))
	}

	// Reload two of the three files and reconstruct
	loaded := make([]*shamir.Share, 2)
	var loadedParams *shamir.SchemeParameters
	for i := 0; i < 2; i++ {
		shareFile, err := ReadShareFile(paths[i])
		require.NoError(t, err)

		assert.Equal(t, group.String(), shareFile.Group)
		assert.Equal(t, 2, shareFile.Threshold)
		assert.Equal(t, 3, shareFile.TotalShares)
		assert.Equal(t, params.Modulus().String(), shareFile.Modulus)

		loadedParams, err = shareFile.SchemeParameters()
		require.NoError(t, err)

		loaded[i], err = shareFile.Share()
		require.NoError(t, err)
		assert.Equal(t, shares[i].Index, loaded[i].Index)
		assert.Zero(t, shares[i].Value.Cmp(loaded[i].Value))
		assert.Equal(t, shares[i].OwnerLabel, loaded[i].OwnerLabel)
	}

	scheme, err := shamir.New(loadedParams)
	require.NoError(t, err)

	recovered, err := scheme.Reconstruct(loaded, len(secret))
	require.NoError(t, err)
	assert.Equal(t, secret, recovered)
}

func TestShareFilePermissions(t *testing.T) {
	params, shares := newTestSplit(t, []byte("permissions"))
	path := filepath.Join(t.TempDir(), "share.yaml")

	shareFile := NewShareFile(uuid.New(), params, shares[0])
	require.NoError(t, shareFile.Write(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestShareFileSameGroup(t *testing.T) {
	params, shares := newTestSplit(t, []byte("grouping"))
	group := uuid.New()

	first := NewShareFile(group, params, shares[0])
	second := NewShareFile(group, params, shares[1])
	assert.True(t, first.SameGroup(second))

	other := NewShareFile(uuid.New(), params, shares[2])
	assert.False(t, first.SameGroup(other))

	mismatched := NewShareFile(group, params, shares[1])
	mismatched.Threshold = 3
	assert.False(t, first.SameGroup(mismatched))
}

func TestShareFileInvalidValue(t *testing.T) {
	shareFile := &ShareFile{
		Index: 1,
		Value: "not base64!!",
	}
	_, err := shareFile.Share()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid value encoding")
}

func TestShareFileInvalidModulus(t *testing.T) {
	shareFile := &ShareFile{
		Threshold:   2,
		TotalShares: 3,
		Modulus:     "not-a-number",
	}
	_, err := shareFile.SchemeParameters()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid modulus")
}

func TestShareFileNonPrimeModulus(t *testing.T) {
	shareFile := &ShareFile{
		Threshold:   2,
		TotalShares: 3,
		Modulus:     "100",
	}
	_, err := shareFile.SchemeParameters()
	assert.ErrorIs(t, err, shamir.ErrInvalidConfiguration)
}

func TestReadShareFileMissing(t *testing.T) {
	_, err := ReadShareFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestReadShareFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "malformed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{{{ not yaml"), 0600))

	_, err := ReadShareFile(path)
	assert.Error(t, err)
}

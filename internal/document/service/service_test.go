package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/districtclose/districtclose/internal/document/domain"
	"github.com/districtclose/districtclose/internal/document/repository"
)

func setupService(t *testing.T) (domain.Service, *snowflake.Node) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Document{}))
	require.NoError(t, db.Exec("DELETE FROM documents").Error)

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	return New(repository.New(db), node), node
}

func TestSeedForTransaction(t *testing.T) {
	svc, node := setupService(t)
	txID := node.Generate()

	docs, err := svc.SeedForTransaction(context.Background(), txID, false)
	require.NoError(t, err)
	require.Len(t, docs, 12)

	byName := make(map[string]domain.Document)
	for _, d := range docs {
		assert.Equal(t, domain.StatusMissing, d.Status)
		byName[d.Name] = d
	}

	contract := byName["GCAAR Sales Contract"]
	assert.True(t, contract.IsRequired)
	require.NotNil(t, contract.OfficialFormURL)
	assert.Equal(t, "https://www.gcaar.com/forms", *contract.OfficialFormURL)

	appraisal := byName["Appraisal Report"]
	assert.True(t, appraisal.VisibleToBuyer)
	assert.False(t, appraisal.VisibleToSeller)
}

func TestSeedForTenantedTransaction(t *testing.T) {
	svc, node := setupService(t)

	docs, err := svc.SeedForTransaction(context.Background(), node.Generate(), true)
	require.NoError(t, err)
	require.Len(t, docs, 15)

	names := make([]string, 0, len(docs))
	for _, d := range docs {
		names = append(names, d.Name)
	}
	assert.Contains(t, names, "TOPA Notice of Sale")
	assert.Contains(t, names, "TOPA Waiver")
}

func TestListForViewerVisibilityAndOrdering(t *testing.T) {
	svc, node := setupService(t)
	txID := node.Generate()

	docs, err := svc.SeedForTransaction(context.Background(), txID, false)
	require.NoError(t, err)

	sellerDocs, err := svc.ListForViewer(context.Background(), txID, "seller")
	require.NoError(t, err)
	assert.Len(t, sellerDocs, 10, "buyer-only documents are hidden from seller")

	buyerDocs, err := svc.ListForViewer(context.Background(), txID, "buyer")
	require.NoError(t, err)
	assert.Len(t, buyerDocs, 12)

	// Link one required document and confirm the still-missing required
	// slots sort ahead of it.
	var contract domain.Document
	for _, d := range docs {
		if d.Name == "GCAAR Sales Contract" {
			contract = d
		}
	}
	_, err = svc.Link(context.Background(), contract.ID, "https://drive.google.com/file/d/abc123", node.Generate())
	require.NoError(t, err)

	buyerDocs, err = svc.ListForViewer(context.Background(), txID, "buyer")
	require.NoError(t, err)
	first := buyerDocs[0]
	assert.True(t, first.IsRequired)
	assert.Equal(t, domain.StatusMissing, first.Status)
	assert.NotEqual(t, contract.ID, first.ID)
}

func TestLinkInfersProvider(t *testing.T) {
	svc, node := setupService(t)
	txID := node.Generate()
	userID := node.Generate()

	docs, err := svc.SeedForTransaction(context.Background(), txID, false)
	require.NoError(t, err)

	linked, err := svc.Link(context.Background(), docs[0].ID, "https://www.dropbox.com/s/abc/contract.pdf", userID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusLinked, linked.Status)
	require.NotNil(t, linked.ExternalProvider)
	assert.Equal(t, domain.ProviderDropbox, *linked.ExternalProvider)
	require.NotNil(t, linked.UploadedBy)
	assert.Equal(t, userID, *linked.UploadedBy)

	linked, err = svc.Link(context.Background(), docs[1].ID, "https://drive.google.com/file/d/abc123", userID)
	require.NoError(t, err)
	require.NotNil(t, linked.ExternalProvider)
	assert.Equal(t, domain.ProviderGoogleDrive, *linked.ExternalProvider)
}

func TestLinkRejectsBadURL(t *testing.T) {
	svc, node := setupService(t)

	docs, err := svc.SeedForTransaction(context.Background(), node.Generate(), false)
	require.NoError(t, err)

	_, err = svc.Link(context.Background(), docs[0].ID, "not a url", node.Generate())
	assert.ErrorIs(t, err, domain.ErrInvalidURL)

	_, err = svc.Link(context.Background(), docs[0].ID, "http://drive.google.com/file", node.Generate())
	assert.ErrorIs(t, err, domain.ErrInvalidURL)
}

func TestUnlink(t *testing.T) {
	svc, node := setupService(t)

	docs, err := svc.SeedForTransaction(context.Background(), node.Generate(), false)
	require.NoError(t, err)

	_, err = svc.Link(context.Background(), docs[0].ID, "https://www.dropbox.com/s/abc/contract.pdf", node.Generate())
	require.NoError(t, err)

	unlinked, err := svc.Unlink(context.Background(), docs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusMissing, unlinked.Status)
	assert.Nil(t, unlinked.ExternalURL)
	assert.Nil(t, unlinked.ExternalProvider)
	assert.Nil(t, unlinked.UploadedBy)
}

func TestSetStatus(t *testing.T) {
	svc, node := setupService(t)

	docs, err := svc.SeedForTransaction(context.Background(), node.Generate(), false)
	require.NoError(t, err)

	updated, err := svc.SetStatus(context.Background(), docs[0].ID, domain.StatusPendingReview)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPendingReview, updated.Status)

	_, err = svc.SetStatus(context.Background(), docs[0].ID, domain.Status("archived"))
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	_, err = svc.SetStatus(context.Background(), node.Generate(), domain.StatusLinked)
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}

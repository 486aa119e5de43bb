//go:build integration
// +build integration

package repository

import (
	"testing"

	"congregation-manager-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PublisherRepositoryTestSuite tests the PublisherRepository
type PublisherRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PublisherRepository
	factories     *testutils.FactorySet
}

func (suite *PublisherRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewPublisherRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *PublisherRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *PublisherRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *PublisherRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *PublisherRepositoryTestSuite) TestCreate() {
	publisher := suite.factories.Publisher.Create()

	err := suite.repo.Create(publisher)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, publisher.ID)
	suite.NotZero(publisher.CreatedAt)
}

func (suite *PublisherRepositoryTestSuite) TestGetByID() {
	publisher := suite.factories.Publisher.WithName("Ana", "López")
	suite.NoError(suite.repo.Create(publisher))

	found, err := suite.repo.GetByID(publisher.ID)

	suite.NoError(err)
	suite.Equal("Ana", found.FirstName)
	suite.Equal("López", found.LastName)
}

func (suite *PublisherRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := suite.repo.GetByID(uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *PublisherRepositoryTestSuite) TestSoftDeleteFiltering() {
	kept := suite.factories.Publisher.WithName("Ana", "López")
	removed := suite.factories.Publisher.WithName("Juan", "Pérez")
	suite.NoError(suite.repo.Create(kept))
	suite.NoError(suite.repo.Create(removed))

	suite.NoError(suite.repo.Delete(removed.ID))

	// Default reads see only the live record
	publishers, err := suite.repo.GetAll()
	suite.NoError(err)
	suite.Len(publishers, 1)
	suite.Equal(kept.ID, publishers[0].ID)

	// Deleted record is gone from direct lookup too
	_, err = suite.repo.GetByID(removed.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	// Administrative read surfaces both, with the marker set
	all, err := suite.repo.GetAllIncludingDeleted()
	suite.NoError(err)
	suite.Len(all, 2)

	var sawDeleted bool
	for _, p := range all {
		if p.ID == removed.ID {
			sawDeleted = true
			suite.True(p.DeletedAt.Valid)
		}
	}
	suite.True(sawDeleted)
}

func (suite *PublisherRepositoryTestSuite) TestExists() {
	publisher := suite.factories.Publisher.Create()
	suite.NoError(suite.repo.Create(publisher))

	exists, err := suite.repo.Exists(publisher.ID)
	suite.NoError(err)
	suite.True(exists)

	suite.NoError(suite.repo.Delete(publisher.ID))

	exists, err = suite.repo.Exists(publisher.ID)
	suite.NoError(err)
	suite.False(exists)
}

func (suite *PublisherRepositoryTestSuite) TestUpdate() {
	publisher := suite.factories.Publisher.Create()
	suite.NoError(suite.repo.Create(publisher))

	publisher.Phone = "+52-555-9999"
	suite.NoError(suite.repo.Update(publisher))

	found, err := suite.repo.GetByID(publisher.ID)
	suite.NoError(err)
	suite.Equal("+52-555-9999", found.Phone)
}

func TestPublisherRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PublisherRepositoryTestSuite))
}

package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/koreat/backend/internal/domain/place"
	"github.com/koreat/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMockPlaceRepository(t *testing.T) (*GormPlaceRepository, sqlmock.Sqlmock, *sql.DB) {
	gormDB, mock, mockDB := newMockDB(t)
	return NewGormPlaceRepository(gormDB), mock, mockDB
}

func testPlaceInfo(t *testing.T) *place.PlaceInfo {
	t.Helper()
	p, err := place.NewPlaceInfo("명동교자", "서울 중구 명동10길 29", "ko", place.EnrichmentResult{
		Title:    "명동교자 본점",
		Category: "한식",
		Menu:     []place.MenuItem{{Name: "칼국수", Price: "10000 KRW"}},
		Reviews:  []string{"국물이 진하다"},
	})
	require.NoError(t, err)
	return p
}

func TestGormPlaceRepository_Create(t *testing.T) {
	t.Run("inserts a cache entry", func(t *testing.T) {
		repo, mock, mockDB := newMockPlaceRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`INSERT INTO "place_infos"`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(context.Background(), testPlaceInfo(t))

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps unique violation to ErrAlreadyExists", func(t *testing.T) {
		repo, mock, mockDB := newMockPlaceRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`INSERT INTO "place_infos"`).
			WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "idx_places_key"`))

		err := repo.Create(context.Background(), testPlaceInfo(t))

		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPlaceRepository_FindByKey(t *testing.T) {
	t.Run("finds entry by cache key", func(t *testing.T) {
		repo, mock, mockDB := newMockPlaceRepository(t)
		defer mockDB.Close()

		id := uuid.New()
		rows := sqlmock.NewRows([]string{"id", "version", "name", "address", "language", "title", "category", "menu", "reviews", "reference_urls"}).
			AddRow(id, 1, "명동교자", "서울 중구 명동10길 29", "ko", "명동교자 본점", "한식",
				`[{"name":"칼국수","price":"10000 KRW"}]`, `["국물이 진하다"]`, `[]`)

		mock.ExpectQuery(`SELECT \* FROM "place_infos" WHERE name = \$1 AND address = \$2 AND language = \$3 ORDER BY .* LIMIT .*`).
			WithArgs("명동교자", "서울 중구 명동10길 29", "ko", 1).
			WillReturnRows(rows)

		p, err := repo.FindByKey(context.Background(), "명동교자", "서울 중구 명동10길 29", "ko")

		require.NoError(t, err)
		assert.Equal(t, id, p.ID)
		assert.Equal(t, "한식", p.Category)
		require.Len(t, p.Menu, 1)
		assert.Equal(t, "칼국수", p.Menu[0].Name)
		assert.Empty(t, p.ReferenceURLs)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent address is stored and queried as empty string", func(t *testing.T) {
		repo, mock, mockDB := newMockPlaceRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "place_infos" WHERE name = \$1 AND address = \$2 AND language = \$3`).
			WithArgs("명동교자", "", "en", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := repo.FindByKey(context.Background(), "명동교자", "", "en")

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPlaceRepository_Update(t *testing.T) {
	t.Run("overwrites an existing entry", func(t *testing.T) {
		repo, mock, mockDB := newMockPlaceRepository(t)
		defer mockDB.Close()

		p := testPlaceInfo(t)
		p.Overwrite("새 제목", "", nil, nil)

		mock.ExpectExec(`UPDATE "place_infos" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(context.Background(), p)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound when nothing was updated", func(t *testing.T) {
		repo, mock, mockDB := newMockPlaceRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`UPDATE "place_infos" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(context.Background(), testPlaceInfo(t))

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPlaceRepository_InterfaceCompliance(t *testing.T) {
	repo, _, mockDB := newMockPlaceRepository(t)
	defer mockDB.Close()

	var _ place.PlaceRepository = repo
}

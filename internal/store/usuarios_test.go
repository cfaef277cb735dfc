package store

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"turismo_api/internal/apierrors"
	"turismo_api/internal/models"
)

var dbSeq atomic.Int64

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:storetest%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Usuario{}, &models.Reservacion{}))
	return db
}

// The unique index is the authoritative duplicate check: inserting a
// second user with the same cedula must yield the typed DuplicateKey
// error even when no pre-check ran.
func TestCreateDuplicateCedula(t *testing.T) {
	repo := NewUsuarioRepository(testDB(t))

	require.NoError(t, repo.Create(&models.Usuario{
		Nombre: "A", Cedula: "1", Correo: "a@b.com", Contrasena: "h", Rol: models.RolCliente,
	}))

	err := repo.Create(&models.Usuario{
		Nombre: "B", Cedula: "1", Correo: "b@b.com", Contrasena: "h", Rol: models.RolAgente,
	})
	require.Error(t, err)

	var apiErr *apierrors.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, apierrors.KindDuplicateKey, apiErr.Kind)
}

func TestCedulaExists(t *testing.T) {
	repo := NewUsuarioRepository(testDB(t))

	existe, err := repo.CedulaExists("1")
	require.NoError(t, err)
	assert.False(t, existe)

	require.NoError(t, repo.Create(&models.Usuario{
		Nombre: "A", Cedula: "1", Correo: "a@b.com", Contrasena: "h", Rol: models.RolCliente,
	}))

	existe, err = repo.CedulaExists("1")
	require.NoError(t, err)
	assert.True(t, existe)
}

func TestFindByCorreoMiss(t *testing.T) {
	repo := NewUsuarioRepository(testDB(t))

	_, err := repo.FindByCorreo("nadie@b.com")
	require.Error(t, err)

	var apiErr *apierrors.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, apierrors.KindNotFound, apiErr.Kind)
}

func TestListInsertionOrder(t *testing.T) {
	repo := NewUsuarioRepository(testDB(t))

	for i, cedula := range []string{"10", "20", "30"} {
		require.NoError(t, repo.Create(&models.Usuario{
			Nombre: fmt.Sprintf("U%d", i), Cedula: cedula,
			Correo: fmt.Sprintf("u%d@b.com", i), Contrasena: "h", Rol: models.RolCliente,
		}))
	}

	usuarios, err := repo.List()
	require.NoError(t, err)
	require.Len(t, usuarios, 3)
	assert.Equal(t, "10", usuarios[0].Cedula)
	assert.Equal(t, "30", usuarios[2].Cedula)
}

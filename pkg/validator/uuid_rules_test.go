package validator_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bwhmather/validation/pkg/validator"
)

var (
	uuidV1        = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	uuidV4        = uuid.MustParse("9b2e4c3a-1f5d-4e8b-a2c7-3d6f0e9a1b25")
	uuidMicrosoft = uuid.MustParse("9b2e4c3a-1f5d-4e8b-c2c7-3d6f0e9a1b25")
)

func TestUUID(t *testing.T) {
	t.Parallel()

	t.Run("accepts uuid values only", func(t *testing.T) {
		v := validator.MustUUID()
		assert.NoError(t, v.Check(uuid.New()))
		assert.NoError(t, v.Check(uuidMicrosoft))

		err := v.Check(uuidV4.String())
		assert.ErrorIs(t, err, validator.ErrShape)
		assert.EqualError(t, err, "expected uuid, but value is of type string")
		assert.ErrorIs(t, v.Check(uuidV4[:]), validator.ErrShape)
	})

	t.Run("checks the version", func(t *testing.T) {
		v := validator.MustUUID(validator.Version(4))
		assert.NoError(t, v.Check(uuidV4))

		err := v.Check(uuidV1)
		assert.ErrorIs(t, err, validator.ErrConstraint)
		assert.EqualError(t, err, "expected UUID4, but received UUID1")
	})

	t.Run("a version implies the rfc 4122 variant", func(t *testing.T) {
		v := validator.MustUUID(validator.Version(4))
		err := v.Check(uuidMicrosoft)
		assert.ErrorIs(t, err, validator.ErrConstraint)
		assert.EqualError(t, err, "expected RFC4122 variant, but uuid variant is Microsoft")
	})

	t.Run("checks the variant", func(t *testing.T) {
		v := validator.MustUUID(validator.Variant(uuid.Microsoft))
		assert.NoError(t, v.Check(uuidMicrosoft))
		assert.EqualError(t, v.Check(uuidV4), "expected Microsoft variant, but uuid variant is RFC4122")
	})

	t.Run("accepts generated versions", func(t *testing.T) {
		assert.NoError(t, validator.MustUUID(validator.Version(3)).Check(uuid.NewMD5(uuid.NameSpaceDNS, []byte("example.com"))))
		assert.NoError(t, validator.MustUUID(validator.Version(5)).Check(uuid.NewSHA1(uuid.NameSpaceDNS, []byte("example.com"))))
	})

	t.Run("rejects unknown variants and versions", func(t *testing.T) {
		_, err := validator.UUID(validator.Variant(uuid.Invalid))
		assert.ErrorIs(t, err, validator.ErrConstraint)

		_, err = validator.UUID(validator.Version(2))
		assert.ErrorIs(t, err, validator.ErrConstraint)
		assert.EqualError(t, err, "unknown UUID version: 2")
	})

	t.Run("rejects a version with an incompatible variant", func(t *testing.T) {
		_, err := validator.UUID(validator.Variant(uuid.Microsoft), validator.Version(4))
		assert.ErrorIs(t, err, validator.ErrConstraint)
		assert.EqualError(t, err, "version is specified, but variant is Microsoft")

		_, err = validator.UUID(validator.Variant(uuid.RFC4122), validator.Version(4))
		assert.NoError(t, err)
	})

	t.Run("describes parameters", func(t *testing.T) {
		v, err := validator.UUID(validator.Version(3), validator.Variant(uuid.RFC4122), validator.Required(false))
		require.NoError(t, err)
		assert.Equal(t, "uuid(variant=uuid.RFC4122, version=3, required=False)", v.Describe())

		assert.Equal(t, "uuid(version=4)", validator.MustUUID(validator.Version(4)).Describe())
	})
}

package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAlocacaoDTO_WarehouseAliases(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"snake_case", `{"evento_id":1,"material_id":2,"deposito_id":7,"quantidade_alocada":3}`},
		{"camelCase", `{"evento_id":1,"material_id":2,"depositoId":7,"quantidade_alocada":3}`},
		{"bare", `{"evento_id":1,"material_id":2,"deposito":7,"quantidade_alocada":3}`},
		{"numeric string", `{"evento_id":1,"material_id":2,"deposito_id":"7","quantidade_alocada":3}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var dto CreateAlocacaoDTO
			require.NoError(t, json.Unmarshal([]byte(tc.body), &dto))
			assert.Equal(t, uint64(7), dto.DepositoID)
			assert.Equal(t, uint64(1), dto.EventoID)
			assert.Equal(t, uint64(2), dto.MaterialID)
			assert.Equal(t, 3, dto.QuantidadeAlocada)
		})
	}
}

func TestCreateAlocacaoDTO_PrefersCanonicalField(t *testing.T) {
	body := `{"evento_id":1,"material_id":2,"deposito_id":7,"depositoId":9,"quantidade_alocada":3}`

	var dto CreateAlocacaoDTO
	require.NoError(t, json.Unmarshal([]byte(body), &dto))
	assert.Equal(t, uint64(7), dto.DepositoID)
}

func TestCreateAlocacaoDTO_RejectsUnrecognizedWarehouseShape(t *testing.T) {
	body := `{"evento_id":1,"material_id":2,"deposito_id":{"id":7},"quantidade_alocada":3}`

	var dto CreateAlocacaoDTO
	assert.Error(t, json.Unmarshal([]byte(body), &dto))
}

func TestUpdateAlocacaoDTO_WarehouseAliases(t *testing.T) {
	var dto UpdateAlocacaoDTO
	require.NoError(t, json.Unmarshal([]byte(`{"depositoId":4,"quantidade_alocada":5}`), &dto))
	assert.Equal(t, uint64(4), dto.DepositoID)
	assert.Equal(t, 5, dto.QuantidadeAlocada)

	var absent UpdateAlocacaoDTO
	require.NoError(t, json.Unmarshal([]byte(`{"quantidade_alocada":5}`), &absent))
	assert.Zero(t, absent.DepositoID)
}

func TestMaterialDTO_NomeItemAlias(t *testing.T) {
	var canonical CreateMaterialDTO
	require.NoError(t, json.Unmarshal([]byte(`{"nome_item":"Mesa dobrável","categoria":"Mobiliário"}`), &canonical))
	assert.Equal(t, "Mesa dobrável", canonical.NomeItem)

	var legacy CreateMaterialDTO
	require.NoError(t, json.Unmarshal([]byte(`{"material":"Mesa dobrável","categoria":"Mobiliário"}`), &legacy))
	assert.Equal(t, "Mesa dobrável", legacy.NomeItem)

	out, err := json.Marshal(MaterialDTO{ID: 1, NomeItem: "Mesa dobrável", Categoria: "Mobiliário"})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"nome_item"`)
	assert.NotContains(t, string(out), `"material"`)
}

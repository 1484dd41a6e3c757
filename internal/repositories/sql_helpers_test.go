package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rei_do_lanche_backend/internal/models"
)

func TestBuildPartialUpdate(t *testing.T) {
	query, args, err := ingredientColumns.buildPartialUpdate("ingredients",
		map[string]interface{}{"stockQuantity": 9.85}, "acct1", "i1")
	require.NoError(t, err)
	assert.Equal(t, "UPDATE ingredients SET stock_quantity = $1 WHERE id = $2 AND account_id = $3", query)
	assert.Equal(t, []interface{}{9.85, "i1", "acct1"}, args)
}

func TestBuildPartialUpdate_SkipsIdentityFields(t *testing.T) {
	query, args, err := ingredientColumns.buildPartialUpdate("ingredients",
		map[string]interface{}{"id": "ignored", "accountId": "ignored", "name": "Beef"}, "acct1", "i1")
	require.NoError(t, err)
	assert.Equal(t, "UPDATE ingredients SET name = $1 WHERE id = $2 AND account_id = $3", query)
	assert.Equal(t, []interface{}{"Beef", "i1", "acct1"}, args)
}

func TestBuildPartialUpdate_RejectsUnknownField(t *testing.T) {
	_, _, err := ingredientColumns.buildPartialUpdate("ingredients",
		map[string]interface{}{"nope": 1}, "acct1", "i1")
	assert.Error(t, err)
}

func TestBuildPartialUpdate_RejectsEmptyUpdate(t *testing.T) {
	_, _, err := ingredientColumns.buildPartialUpdate("ingredients",
		map[string]interface{}{}, "acct1", "i1")
	assert.Error(t, err)

	_, _, err = ingredientColumns.buildPartialUpdate("ingredients",
		map[string]interface{}{"id": "only-identity"}, "acct1", "i1")
	assert.Error(t, err)
}

func TestBuildPartialUpdate_EncodesJSONColumns(t *testing.T) {
	query, args, err := productColumns.buildPartialUpdate("products",
		map[string]interface{}{"ingredients": []map[string]interface{}{
			{"ingredientId": "i1", "quantity": 0.15},
		}}, "acct1", "p1")
	require.NoError(t, err)
	assert.Equal(t, "UPDATE products SET ingredients = $1 WHERE id = $2 AND account_id = $3", query)
	require.Len(t, args, 3)
	assert.JSONEq(t, `[{"ingredientId":"i1","quantity":0.15}]`, args[0].(string))
}

func TestMarshalJSONColumn_NilBecomesEmptyArray(t *testing.T) {
	var lines []models.RecipeLine
	encoded, err := marshalJSONColumn(lines)
	require.NoError(t, err)
	assert.Equal(t, "[]", encoded)
}

func TestUnmarshalJSONColumn_ToleratesEmpty(t *testing.T) {
	var lines []models.RecipeLine
	require.NoError(t, unmarshalJSONColumn("", &lines))
	assert.Nil(t, lines)

	require.NoError(t, unmarshalJSONColumn(`[{"ingredientId":"i1","quantity":0.15}]`, &lines))
	require.Len(t, lines, 1)
	assert.Equal(t, "i1", lines[0].IngredientID)
}

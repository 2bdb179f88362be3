package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwaggerDoc_OverdueProjectsDescription(t *testing.T) {
	var doc struct {
		Paths map[string]map[string]struct {
			Description string `json:"description"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))

	op, ok := doc.Paths["/businesses/{businessID}/projects/overdue"]["get"]
	require.True(t, ok)
	assert.Equal(t, "Returns projects marked OVERDUE or still ACTIVE past their deadline", op.Description)
}

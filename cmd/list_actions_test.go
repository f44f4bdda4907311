package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/fluxor/model/types"

	"github.com/viant/tally-mcp/mcp/tool"
)

type stubService struct {
	name string
	sigs types.Signatures
}

func (s *stubService) Name() string              { return s.name }
func (s *stubService) Methods() types.Signatures { return s.sigs }
func (s *stubService) Method(name string) (types.Executable, error) {
	return nil, types.NewMethodNotFoundError(name)
}

func TestActionLines(t *testing.T) {
	testCases := []struct {
		description string
		service     *stubService
		expect      []string
	}{
		{
			description: "tally methods show backing tool",
			service: &stubService{name: tool.ServiceName, sigs: types.Signatures{
				{Name: "listDaos", Description: "List DAOs"},
				{Name: "getAddressDaosProposals", Description: "Proposals of DAOs an address joined"},
			}},
			expect: []string{
				"  getAddressDaosProposals\tget-address-daos-proposals\tProposals of DAOs an address joined",
				"  listDaos\tlist-daos\tList DAOs",
			},
		},
		{
			description: "builtin methods have no tool column",
			service: &stubService{name: "system/exec", sigs: types.Signatures{
				{Name: "execute", Description: "run command"},
			}},
			expect: []string{"  execute\trun command"},
		},
		{
			description: "no methods",
			service:     &stubService{name: "nop"},
			expect:      []string{},
		},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, actionLines(testCase.service), testCase.description)
	}
}

func TestActionLines_KeepsServiceOrder(t *testing.T) {
	service := &stubService{name: "printer", sigs: types.Signatures{{Name: "print"}, {Name: "debug"}}}
	_ = actionLines(service)
	assert.Equal(t, "print", service.sigs[0].Name)
}

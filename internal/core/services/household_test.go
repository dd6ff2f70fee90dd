package services

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/barangay-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/barangay-cli/internal/core/domain"
	"github.com/custodia-labs/barangay-cli/internal/logger"
)

func seedHouseholds(t *testing.T, residents ...domain.Resident) *HouseholdService {
	t.Helper()
	store := memory.NewResidentStore()
	for _, r := range residents {
		_, err := store.Insert(context.Background(), r)
		require.NoError(t, err)
	}
	return NewHouseholdService(memory.NewHouseholdQuery(store), memory.NewConfigStore())
}

func TestHouseholdService_NilQuery(t *testing.T) {
	service := NewHouseholdService(nil, nil)

	_, err := service.Heads(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}

func TestHouseholdService_IncomeTotals(t *testing.T) {
	service := seedHouseholds(t,
		member("A", "One", "HH1", domain.RoleHead, 5000),
		member("B", "One", "HH1", domain.RoleSpouse, 3000),
		member("C", "Two", "HH2", domain.RoleHead, 7000),
		resident("D", "Loner"),
	)

	totals, err := service.IncomeTotals(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.HouseholdIncome{
		{HouseholdNumber: "HH1", TotalIncome: 8000},
		{HouseholdNumber: "HH2", TotalIncome: 7000},
	}, totals)
}

func TestHouseholdService_HeadsOnlyHeadRole(t *testing.T) {
	service := seedHouseholds(t,
		member("A", "One", "HH1", domain.RoleHead, 0),
		member("B", "One", "HH1", domain.RoleChild, 0),
		member("C", "Two", "HH2", domain.RoleMember, 0),
	)

	heads, err := service.Heads(context.Background())

	require.NoError(t, err)
	require.Len(t, heads, 1)
	assert.Equal(t, "HH1", heads[0].HouseholdNumber)
	assert.Equal(t, "A", heads[0].FirstName)
}

func TestHouseholdService_HeadsCollapseDuplicates(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetVerbose(true)
	t.Cleanup(func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	})

	service := seedHouseholds(t,
		member("First", "Head", "HH1", domain.RoleHead, 0),
		member("Second", "Head", "HH1", domain.RoleHead, 0),
		member("Other", "Head", "HH2", domain.RoleHead, 0),
	)

	heads, err := service.Heads(context.Background())

	require.NoError(t, err)
	require.Len(t, heads, 2)
	assert.Equal(t, "First", heads[0].FirstName)
	assert.Equal(t, "HH2", heads[1].HouseholdNumber)
	assert.Contains(t, buf.String(), "[WARN] household HH1 has more than one head")
}

func TestHouseholdService_PWDAndSenior(t *testing.T) {
	pwd := member("A", "One", "HH1", domain.RoleHead, 0)
	pwd.IsPWD = true
	senior := member("B", "Two", "HH2", domain.RoleHead, 0)
	senior.IsSenior = true
	service := seedHouseholds(t, pwd, senior, member("C", "Three", "HH3", domain.RoleHead, 0))
	ctx := context.Background()

	withPWD, err := service.WithPWD(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"HH1"}, withPWD)

	withSenior, err := service.WithSenior(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"HH2"}, withSenior)
}

func TestHouseholdService_LowIncome(t *testing.T) {
	service := seedHouseholds(t,
		member("A", "One", "HH1", domain.RoleHead, 15000),
		member("B", "Two", "HH2", domain.RoleHead, 20000),
		member("C", "Three", "HH3", domain.RoleHead, 25000),
	)
	ctx := context.Background()

	low, err := service.LowIncome(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []domain.HouseholdIncome{{HouseholdNumber: "HH1", TotalIncome: 15000}}, low)

	low, err = service.LowIncome(ctx, 30000)
	require.NoError(t, err)
	assert.Len(t, low, 3)
}

func TestHouseholdService_LowIncomeThresholdFromConfig(t *testing.T) {
	config := memory.NewConfigStore()
	store := memory.NewResidentStore()
	service := NewHouseholdService(memory.NewHouseholdQuery(store), config)

	assert.Equal(t, domain.DefaultLowIncomeThreshold, service.LowIncomeThreshold())

	require.NoError(t, config.Set(KeyLowIncomeThreshold, 12000))
	assert.Equal(t, int64(12000), service.LowIncomeThreshold())
}

func TestHouseholdService_MembersRequiresNumber(t *testing.T) {
	service := seedHouseholds(t)

	_, err := service.Members(context.Background(), " ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestHouseholdService_Summary(t *testing.T) {
	head := member("Maria", "Lopez", "HH7", domain.RoleHead, 9000)
	head.IsSenior = true
	child := member("Jose", "Lopez", "HH7", domain.RoleChild, 1000)
	child.IsPWD = true
	service := seedHouseholds(t, head, child)
	ctx := context.Background()

	summary, err := service.Summary(ctx, "HH7")
	require.NoError(t, err)
	assert.Equal(t, int64(10000), summary.TotalIncome)
	assert.True(t, summary.HasPWD)
	assert.True(t, summary.HasSenior)
	require.NotNil(t, summary.Head)
	assert.Equal(t, "Maria Lopez", summary.Head.FullName())
	assert.Len(t, summary.Members, 2)

	_, err = service.Summary(ctx, "HH404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

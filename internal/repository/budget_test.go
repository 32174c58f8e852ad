package repository

import (
	"testing"
	"time"

	"production-app/internal/domain/budget"
	"production-app/internal/domain/contracts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestProjectBudgetTotals(t *testing.T) {
	db := openTestDB(t)

	project := newProject("Budget Study", "Filming")
	require.NoError(t, CreateProject(db, project))

	require.NoError(t, CreateLineItem(db, &budget.BudgetLineItem{
		ProjectID:       project.ID,
		Category:        "Locations",
		Description:     "Harbor permit",
		EstimatedAmount: 1200,
		ActualAmount:    ptr(1350.50),
	}))
	require.NoError(t, CreateLineItem(db, &budget.BudgetLineItem{
		ProjectID:       project.ID,
		Category:        "Equipment",
		Description:     "Crane rental",
		EstimatedAmount: 800,
	}))

	totals, err := ProjectBudgetTotals(db, project.ID)
	require.NoError(t, err)
	assert.InDelta(t, 2000, totals.Estimated, 0.001)
	assert.InDelta(t, 1350.50, totals.Actual, 0.001, "items without a real amount do not count")

	empty, err := ProjectBudgetTotals(db, project.ID+100)
	require.NoError(t, err)
	assert.Zero(t, empty.Estimated)
	assert.Zero(t, empty.Actual)

	listed, err := ListLineItemsByProject(db, project.ID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "USD", listed[0].Currency)
}

func TestContractLookups(t *testing.T) {
	db := openTestDB(t)

	project := newProject("Contract Study", "Pre-production")
	require.NoError(t, CreateProject(db, project))
	other := newProject("Second Feature", "Development")
	require.NoError(t, CreateProject(db, other))

	member := newMember("Ines", "Valdez", "ines@crew.example")
	require.NoError(t, CreateMember(db, member))

	contract := &contracts.TalentContract{
		ProjectID:    project.ID,
		MemberID:     member.ID,
		SigningDate:  time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC),
		AgreedSalary: 5100,
		Duration:     "10 weeks",
		SpecificRole: "Lead Actress",
	}
	require.NoError(t, CreateContract(db, contract))

	require.NoError(t, CreateContract(db, &contracts.TalentContract{
		ProjectID:    other.ID,
		MemberID:     member.ID,
		SigningDate:  time.Date(2025, time.April, 12, 0, 0, 0, 0, time.UTC),
		AgreedSalary: 4700,
		Duration:     "6 weeks",
		SpecificRole: "Narrator",
	}))

	byPair, err := ContractByProjectAndMember(db, project.ID, member.ID)
	require.NoError(t, err)
	assert.Equal(t, contract.ID, byPair.ID)
	assert.Equal(t, "Contract of Ines for Contract Study", byPair.String())

	_, err = ContractByProjectAndMember(db, project.ID, member.ID+50)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	forProject, err := ListContractsByProject(db, project.ID)
	require.NoError(t, err)
	require.Len(t, forProject, 1)
	assert.Equal(t, "ines@crew.example", forProject[0].Member.Email)

	forMember, err := ListContractsByMember(db, member.ID)
	require.NoError(t, err)
	require.Len(t, forMember, 2)
	assert.Equal(t, "Contract Study", forMember[0].Project.Title, "contracts are listed by signing date")

	require.NoError(t, DeleteContract(db, contract.ID))
	remaining, err := ListContractsByMember(db, member.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

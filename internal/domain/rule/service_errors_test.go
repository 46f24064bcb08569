package rule_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/planops/ruleboard/internal/domain/rule"
	"github.com/planops/ruleboard/internal/repository/mocks"
)

func TestCreate_ListFailureWrapped(t *testing.T) {
	repo := new(mocks.RuleRepository)
	repo.On("List", mock.Anything).Return(nil, errors.New("store offline"))

	svc := rule.NewService(repo, nil, nil, nil)
	_, err := svc.Create(context.Background(), rule.CreateRequest{
		Name: "Copay", BusinessArea: "Medical",
	})
	require.ErrorContains(t, err, "listing rules")
	repo.AssertExpectations(t)
}

func TestUpdateCell_UpdateFailureWrapped(t *testing.T) {
	repo := new(mocks.RuleRepository)
	repo.On("GetByRuleID", mock.Anything, "R0001").Return(&rule.Rule{
		ID: "id-1", RuleID: "R0001", Name: "Copay",
	}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(errors.New("store offline"))

	sink := new(mocks.ActivitySink)
	svc := rule.NewService(repo, sink, nil, nil)
	_, err := svc.UpdateCell(context.Background(), rule.UpdateCellRequest{
		RuleID: "R0001", Field: "name", Value: "New Name",
	})
	require.ErrorContains(t, err, "updating rule")
	require.Empty(t, sink.Entries, "no activity on a failed update")
	repo.AssertExpectations(t)
}

func TestPublish_ActivityCarriesVersions(t *testing.T) {
	repo := new(mocks.RuleRepository)
	repo.On("GetByRuleID", mock.Anything, "R0001").Return(&rule.Rule{
		ID: "id-1", RuleID: "R0001", Name: "Copay", Version: "2.3",
	}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	sink := new(mocks.ActivitySink)
	svc := rule.NewService(repo, sink, nil, nil)
	published, err := svc.Publish(context.Background(), rule.BulkRequest{
		RuleIDs: []string{"R0001"}, User: "pnatarajan",
	})
	require.NoError(t, err)
	require.Len(t, published, 1)

	require.Len(t, sink.Entries, 1)
	require.Equal(t, "2.3", sink.Entries[0].OldValue)
	require.Equal(t, "3.0", sink.Entries[0].NewValue)
	repo.AssertExpectations(t)
}

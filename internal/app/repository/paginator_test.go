package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQuery struct {
	rows       []int
	countErr   error
	fetchErr   error
	counts     int
	fetches    int
	lastOffset int
	lastLimit  int
}

func (q *fakeQuery) Count(ctx context.Context) (int64, error) {
	q.counts++
	if q.countErr != nil {
		return 0, q.countErr
	}
	return int64(len(q.rows)), nil
}

func (q *fakeQuery) Fetch(ctx context.Context, offset, limit int) ([]int, error) {
	q.fetches++
	q.lastOffset, q.lastLimit = offset, limit
	if q.fetchErr != nil {
		return nil, q.fetchErr
	}
	if offset >= len(q.rows) {
		return []int{}, nil
	}
	end := offset + limit
	if end > len(q.rows) {
		end = len(q.rows)
	}
	return q.rows[offset:end], nil
}

func identity(v int) (int, error) { return v, nil }

func rowsOf(n int) []int {
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i + 1
	}
	return rows
}

func TestPaginateExampleScenario(t *testing.T) {
	q := &fakeQuery{rows: rowsOf(25)}

	for page, want := range map[int]int{1: 10, 2: 10, 3: 5, 4: 0} {
		result, err := Paginate(context.Background(), q, page, 10, identity)
		require.NoError(t, err)

		assert.Len(t, result.Data, want, "page %d", page)
		assert.Equal(t, int64(25), result.TotalItems)
		assert.Equal(t, 3, result.TotalPages)
		assert.Equal(t, page, result.PageNumber)
		assert.Equal(t, 10, result.PageSize)
	}

	result, err := Paginate(context.Background(), q, 3, 10, identity)
	require.NoError(t, err)
	assert.Equal(t, []int{21, 22, 23, 24, 25}, result.Data)
}

func TestPaginateSizes(t *testing.T) {
	for _, n := range []int{0, 1, 7, 10, 99, 100, 101} {
		for _, s := range []int{1, 3, 10, 100} {
			q := &fakeQuery{rows: rowsOf(n)}
			wantPages := (n + s - 1) / s

			for page := 1; page <= wantPages+1; page++ {
				result, err := Paginate(context.Background(), q, page, s, identity)
				require.NoError(t, err)
				assert.Equal(t, wantPages, result.TotalPages)

				switch {
				case page < wantPages:
					assert.Len(t, result.Data, s)
				case page == wantPages:
					assert.Len(t, result.Data, n-(wantPages-1)*s)
				default:
					assert.Empty(t, result.Data)
					assert.NotNil(t, result.Data)
				}
			}
		}
	}
}

func TestPaginateCallsStoreOnce(t *testing.T) {
	q := &fakeQuery{rows: rowsOf(30)}

	_, err := Paginate(context.Background(), q, 2, 10, identity)
	require.NoError(t, err)

	assert.Equal(t, 1, q.counts)
	assert.Equal(t, 1, q.fetches)
	assert.Equal(t, 10, q.lastOffset)
	assert.Equal(t, 10, q.lastLimit)
}

func TestPaginateStoreErrors(t *testing.T) {
	boom := errors.New("connection reset")

	_, err := Paginate(context.Background(), &fakeQuery{rows: rowsOf(3), countErr: boom}, 1, 10, identity)
	assert.ErrorIs(t, err, boom)

	q := &fakeQuery{rows: rowsOf(3), fetchErr: boom}
	result, err := Paginate(context.Background(), q, 1, 10, identity)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, result)
}

func TestPaginateMappingErrorFailsWholePage(t *testing.T) {
	q := &fakeQuery{rows: rowsOf(5)}
	mapFn := func(v int) (int, error) {
		if v == 4 {
			return 0, ErrInvalidRow
		}
		return v, nil
	}

	result, err := Paginate(context.Background(), q, 1, 10, mapFn)
	assert.ErrorIs(t, err, ErrInvalidRow)
	assert.Nil(t, result)
}

func TestPaginateRejectsInvalidWindow(t *testing.T) {
	q := &fakeQuery{rows: rowsOf(5)}

	_, err := Paginate(context.Background(), q, 0, 10, identity)
	assert.Error(t, err)
	_, err = Paginate(context.Background(), q, 1, 0, identity)
	assert.Error(t, err)
	assert.Zero(t, q.counts)
}

type shape struct {
	ID   *int64  `json:"id" binding:"required"`
	Name *string `json:"name"`
}

func TestValidateRow(t *testing.T) {
	id := int64(7)

	row, err := ValidateRow(shape{ID: &id})
	require.NoError(t, err)
	assert.Equal(t, &id, row.ID)

	_, err = ValidateRow(shape{})
	assert.ErrorIs(t, err, ErrInvalidRow)
}

func TestValidated(t *testing.T) {
	id := int64(1)
	toShape := Validated(func(v *int64) shape { return shape{ID: v} })

	_, err := toShape(&id)
	assert.NoError(t, err)

	_, err = toShape(nil)
	assert.ErrorIs(t, err, ErrInvalidRow)
}

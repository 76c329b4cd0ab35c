package util

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ariebrainware/fitbuddy-api/model"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestDiseaseCache_NilIsNoop(t *testing.T) {
	var dc *DiseaseCache
	ctx := context.Background()

	dc.SetList(ctx, []model.DiseaseSummary{{ID: 1, Name: "Asthma"}})
	_, ok := dc.List(ctx)
	assert.False(t, ok)

	_, ok = dc.Get(ctx, 1)
	assert.False(t, ok)
	assert.Nil(t, NewDiseaseCache(nil, time.Minute))
}

func TestDiseaseCache_ListHit(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	defer rdb.Close()
	dc := NewDiseaseCache(rdb, time.Minute)

	list := []model.DiseaseSummary{{ID: 1, Name: "Asthma"}, {ID: 2, Name: "Diabetes"}}
	raw, _ := json.Marshal(list)
	mock.ExpectGet("diseases:all").SetVal(string(raw))

	got, ok := dc.List(context.Background())
	assert.True(t, ok)
	assert.Equal(t, list, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDiseaseCache_MissAndSet(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	defer rdb.Close()
	dc := NewDiseaseCache(rdb, 5*time.Minute)

	d := model.Disease{ID: 42, Name: "Diabetes", ExerciseType: "Aerobic"}
	raw, _ := json.Marshal(d)

	mock.ExpectGet("disease:42").RedisNil()
	mock.ExpectSet("disease:42", raw, 5*time.Minute).SetVal("OK")

	_, ok := dc.Get(context.Background(), 42)
	assert.False(t, ok)
	dc.Set(context.Background(), d)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDiseaseCache_ErrorsAreMisses(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	defer rdb.Close()
	dc := NewDiseaseCache(rdb, time.Minute)

	mock.ExpectGet("disease:7").SetErr(errors.New("connection reset"))
	mock.ExpectGet("disease:8").SetVal("{not json")

	_, ok := dc.Get(context.Background(), 7)
	assert.False(t, ok)
	_, ok = dc.Get(context.Background(), 8)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package broker

import (
	"encoding/json"
	"errors"

	"github.com/hibiken/asynq"
)

// TaskSampleUnit is the type of the task published for every sample unit.
const TaskSampleUnit = "sample.unit.created"

// SampleUnitPayload is the message body of a sample unit task.
type SampleUnitPayload struct {
	SampleUnitID           string            `json:"sampleUnitId"`
	CollectionExerciseID   string            `json:"collectionExerciseId"`
	ActionPlanID           string            `json:"actionPlanId"`
	CollectionInstrumentID string            `json:"collectionInstrumentId"`
	Attributes             map[string]string `json:"attributes"`
}

func NewSampleUnitTask(payload SampleUnitPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Join(ErrEncodePayload, err)
	}
	return asynq.NewTask(TaskSampleUnit, data), nil
}

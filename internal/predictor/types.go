package predictor

// PredictRequest — тело запроса к inference-сервису.
type PredictRequest struct {
	Symptoms []string `json:"symptoms"`
}

// PredictResponse — тело ответа inference-сервиса.
// Имя поля Prediction задано контрактом внешнего сервиса.
type PredictResponse struct {
	Prediction string `json:"Prediction"`
}

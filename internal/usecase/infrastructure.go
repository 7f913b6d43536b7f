package usecase

import "context"

type ImagesInfra interface {
	UploadImages(ctx context.Context, req *UploadImagesReq) (*UploadImagesRes, error)
	CleanupImages(keys []string)
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
	// PayloadBytes сериализует событие движения остатков в формат брокера.
	PayloadBytes(req *StockMovementReq) ([]byte, error)
}

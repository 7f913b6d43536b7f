package http

import (
	"errors"
	"net/http"

	"github.com/DRSN-tech/inventory-backend/internal/quantity"
	"github.com/DRSN-tech/inventory-backend/internal/usecase"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/DRSN-tech/inventory-backend/pkg/logger"
)

type ProductHandler struct {
	catalogUC usecase.CatalogUC
	logger    logger.Logger
}

func NewProductHandler(catalogUC usecase.CatalogUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{catalogUC: catalogUC, logger: logger}
}

// registerNewProduct
//
//	@Summary		Регистрация нового товара
//	@Description	Создает новый товар в каталоге с изображениями
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			name		formData	string	true	"Название товара"
//	@Param			category	formData	string	true	"Категория"
//	@Param			price		formData	number	true	"Цена"
//	@Param			images		formData	file	false	"Изображения товара"
//	@Success		201			{object}	map[string]interface{}	"Успешное создание"
//	@Failure		400			{object}	ErrorResponse			"Ошибка валидации"
//	@Router			/products [post]
func (p *ProductHandler) registerNewProduct(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 150 << 20
		maxMemory           = 32 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	prMeta, err := parseProductForm(r)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	images, err := parseImages(r.MultipartForm.File["images"])
	if err != nil {
		if !errors.Is(err, e.ErrNoImages) {
			p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
			WriteError(w, err)
			return
		}
		images = nil // товар без изображений допустим
	}

	res, err := p.catalogUC.RegisterNewProduct(r.Context(), usecase.NewAddNewProductReq(prMeta.Name, prMeta.CategoryName, prMeta.Price, images))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	if res.NoChanges {
		WriteSuccess(w, http.StatusOK, map[string]interface{}{
			"product_id": res.Product.ID,
			"changed":    false,
		})
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"product_id": res.Product.ID,
		"changed":    true,
	})
}

// getProductsInfo
//
//	@Summary		Информация о товарах
//	@Description	Возвращает данные товаров по списку идентификаторов
//	@Tags			products
//	@Produce		json
//	@Param			ids	query		string	true	"Идентификаторы через запятую: 1,2,3"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		400	{object}	ErrorResponse
//	@Router			/products [get]
func (p *ProductHandler) getProductsInfo(w http.ResponseWriter, r *http.Request) {
	ids, err := parseIDsParam(r.URL.Query().Get("ids"))
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	res, err := p.catalogUC.GetProductsInfo(r.Context(), usecase.NewGetProductsReq(ids))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"products":  toArrProductResponse(res.Products),
		"not_found": res.NotFoundProducts,
	})
}

// ProductResponse — товар в ответе API, с готовым отображением остатка.
type ProductResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	CategoryName string `json:"category_name"`
	Price        int64  `json:"price"`
	Quantity     int64  `json:"quantity"`
	Display      string `json:"quantity_display"`
	Tooltip      string `json:"quantity_tooltip,omitempty"`
}

func toProductResponse(pr *usecase.ProductInfo) ProductResponse {
	formatted := quantity.Format(pr.Quantity, pr.Name)

	return ProductResponse{
		ID:           pr.ID,
		Name:         pr.Name,
		CategoryName: pr.CategoryName,
		Price:        pr.Price,
		Quantity:     pr.Quantity,
		Display:      formatted.Display,
		Tooltip:      formatted.Tooltip,
	}
}

func toArrProductResponse(prs []usecase.ProductInfo) []ProductResponse {
	res := make([]ProductResponse, len(prs))
	for i, pr := range prs {
		res[i] = toProductResponse(&pr)
	}

	return res
}

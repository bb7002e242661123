package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	inHttp "github.com/zgz/product-service/internal/http"
	"github.com/zgz/product-service/internal/log"
	inOtel "github.com/zgz/product-service/internal/otel"
	"github.com/zgz/product-service/product/internal/otel"
	"github.com/zgz/product-service/product/internal/service"
	"github.com/zgz/product-service/product/pkg/request"
)

type ProductController struct {
	service *service.ProductService
}

func AttachProductController(router *mux.Router, service *service.ProductService) {
	controller := ProductController{service}

	productRouter := router.PathPrefix("/products").Subrouter()
	productRouter.HandleFunc("", controller.GetProducts).Methods(http.MethodGet)
	productRouter.HandleFunc("/category/{category}", controller.GetProductsByCategory).
		Methods(http.MethodGet)
	productRouter.HandleFunc("", controller.InsertProduct).Methods(http.MethodPost)
	productRouter.HandleFunc("/{productId}", controller.UpdateProduct).Methods(http.MethodPut)
	productRouter.HandleFunc("/{productId}", controller.RemoveProduct).Methods(http.MethodDelete)
}

func (p ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "ProductController GetProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Ctx(c).
		Str(log.KeyTag, "ProductController GetProducts").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "get products").Logger()
	logger.Trace().Msg("get products")
	span.AddEvent("get products")
	c = logger.WithContext(c)
	products, err := p.service.FindProducts(c)
	if err != nil {
		err = fmt.Errorf("failed get products with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteErrorResponse(c, w, r, err)
		return
	}
	span.AddEvent("got products")
	logger.Info().Msg("got products")

	inHttp.WriteJsonResponse(c, w, http.StatusOK, products)
}

func (p ProductController) GetProductsByCategory(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "ProductController GetProductsByCategory")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Ctx(c).
		Str(log.KeyTag, "ProductController GetProductsByCategory").
		Logger()

	category := mux.Vars(r)["category"]
	logger = logger.With().Str(log.KeyCategory, category).Logger()
	span.SetAttributes(attribute.String(log.KeyCategory, category))

	logger = logger.With().Str(log.KeyProcess, "get products by category").Logger()
	logger.Trace().Msg("get products by category")
	span.AddEvent("get products by category")
	c = logger.WithContext(c)
	products, err := p.service.FindProductsByCategory(c, category)
	if err != nil {
		err = fmt.Errorf("failed get products by category with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteErrorResponse(c, w, r, err)
		return
	}
	span.AddEvent("got products by category")
	logger.Info().Msg("got products by category")

	inHttp.WriteJsonResponse(c, w, http.StatusOK, products)
}

func (p ProductController) InsertProduct(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "ProductController InsertProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Ctx(c).
		Str(log.KeyTag, "ProductController InsertProduct").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "decoding request body").Logger()
	logger.Trace().Msg("decoding request body")
	span.AddEvent("decoding request body")
	reqBody := request.Product{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteValidationError(c, w, r, err)
		return
	}
	span.AddEvent("decoded request body")
	logger.Trace().Msg("decoded request body")

	logger = logger.With().Str(log.KeyProcess, "validating request body").Logger()
	logger.Trace().Msg("validating request body")
	span.AddEvent("validating request body")
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.StructCtx(c, reqBody); err != nil {
		err = fmt.Errorf("failed validating request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteValidationError(c, w, r, err)
		return
	}
	span.AddEvent("validated request body")
	logger.Info().Msg("validated request body")

	logger = logger.With().Str(log.KeyProcess, "inserting product").Logger()
	logger.Info().Msg("inserting product")
	c = logger.WithContext(c)
	product, err := p.service.InsertProduct(c, reqBody)
	if err != nil {
		err = fmt.Errorf("failed inserting product with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteErrorResponse(c, w, r, err)
		return
	}
	logger.Info().Msg("inserted product")

	// 200 rather than 201, matching the original contract.
	inHttp.WriteJsonResponse(c, w, http.StatusOK, product)
}

func (p ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "ProductController UpdateProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Ctx(c).
		Str(log.KeyTag, "ProductController UpdateProduct").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "getting pathValue productId").Logger()
	logger.Trace().Msg("getting pathValue productId")
	span.AddEvent("getting pathValue productId")
	id, err := strconv.ParseInt(mux.Vars(r)["productId"], 10, 64)
	if err != nil {
		err = fmt.Errorf("failed getting pathValue productId with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteValidationError(c, w, r, err)
		return
	}
	logger = logger.With().Int64(log.KeyProductID, id).Logger()
	span.SetAttributes(attribute.Int64(log.KeyProductID, id))
	logger.Debug().Msg("got pathValue productId")

	logger = logger.With().Str(log.KeyProcess, "decoding request body").Logger()
	logger.Trace().Msg("decoding request body")
	span.AddEvent("decoding request body")
	reqBody := request.Product{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteValidationError(c, w, r, err)
		return
	}
	span.AddEvent("decoded request body")
	logger.Debug().Msg("decoded request body")

	logger = logger.With().Str(log.KeyProcess, "validating request body").Logger()
	logger.Trace().Msg("validating request body")
	span.AddEvent("validating request body")
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.StructCtx(c, reqBody); err != nil {
		err = fmt.Errorf("failed validating request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteValidationError(c, w, r, err)
		return
	}
	span.AddEvent("validated request body")
	logger.Debug().Msg("validated request body")

	logger = logger.With().Str(log.KeyProcess, "updating product").Logger()
	logger.Trace().Msg("updating product")
	span.AddEvent("updating product")
	c = logger.WithContext(c)
	product, err := p.service.UpdateProduct(c, id, reqBody)
	if err != nil {
		err = fmt.Errorf("failed updating product with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteErrorResponse(c, w, r, err)
		return
	}
	span.AddEvent("updated product")
	logger.Debug().Msg("updated product")

	inHttp.WriteJsonResponse(c, w, http.StatusOK, product)
}

func (p ProductController) RemoveProduct(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "ProductController RemoveProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Ctx(c).
		Str(log.KeyTag, "ProductController RemoveProduct").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "getting pathValue productId").Logger()
	logger.Trace().Msg("getting pathValue productId")
	span.AddEvent("getting pathValue productId")
	id, err := strconv.ParseInt(mux.Vars(r)["productId"], 10, 64)
	if err != nil {
		err = fmt.Errorf("failed getting pathValue productId with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteValidationError(c, w, r, err)
		return
	}
	logger = logger.With().Int64(log.KeyProductID, id).Logger()
	span.SetAttributes(attribute.Int64(log.KeyProductID, id))
	logger.Debug().Msg("got pathValue productId")

	logger = logger.With().Str(log.KeyProcess, "removing product").Logger()
	logger.Trace().Msg("removing product")
	span.AddEvent("removing product")
	c = logger.WithContext(c)
	if err := p.service.RemoveProduct(c, id); err != nil {
		err = fmt.Errorf("failed removing product with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteErrorResponse(c, w, r, err)
		return
	}
	span.AddEvent("removed product")
	logger.Info().Msg("removed product")

	w.WriteHeader(http.StatusNoContent)
}

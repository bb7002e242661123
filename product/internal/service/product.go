package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/zgz/product-service/internal/log"
	inOtel "github.com/zgz/product-service/internal/otel"
	"github.com/zgz/product-service/internal/repository"
	inErrors "github.com/zgz/product-service/product/internal/errors"
	"github.com/zgz/product-service/product/internal/otel"
	"github.com/zgz/product-service/product/pkg/request"
	"github.com/zgz/product-service/product/pkg/response"
)

type ProductService struct {
	pool    *pgxpool.Pool
	queries *repository.Queries
}

func NewProductService(pool *pgxpool.Pool, queries *repository.Queries) ProductService {
	return ProductService{pool: pool, queries: queries}
}

func (svc ProductService) InsertProduct(
	c context.Context,
	param request.Product,
) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService InsertProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Ctx(c).
		Str(log.KeyTag, "ProductService InsertProduct").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "inserting product to database").Logger()
	logger.Trace().Msg("inserting product to database")
	span.AddEvent("inserting product to database")
	product, err := svc.queries.InsertProduct(c, repository.InsertProductParams{
		Name:        param.Name,
		Description: param.Description,
		Category:    param.Category,
		Price:       repository.NumericFromDecimal(param.Price),
	})
	if err != nil {
		err = fmt.Errorf("failed to insert product with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	span.AddEvent("inserted product to database")
	logger = logger.With().Any(log.KeyProduct, product).Logger()
	logger.Info().Msg("inserted product to database")

	return product.Response(), nil
}

func (svc ProductService) FindProducts(
	c context.Context,
) ([]response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService FindProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Ctx(c).
		Str(log.KeyTag, "ProductService FindProducts").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding products in database").Logger()
	logger.Trace().Msg("finding products in database")
	span.AddEvent("finding products in database")
	products, err := svc.queries.FindProducts(c)
	if err != nil {
		err = fmt.Errorf("failed to get products from database with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	span.AddEvent("found products in database")
	logger.Info().Msg("found products in database")

	responses := make([]response.Product, 0, len(products))
	for _, product := range products {
		responses = append(responses, product.Response())
	}
	return responses, nil
}

func (svc ProductService) FindProductsByCategory(
	c context.Context,
	category string,
) ([]response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService FindProductsByCategory")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Ctx(c).
		Str(log.KeyTag, "ProductService FindProductsByCategory").
		Str(log.KeyCategory, category).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding products by category").Logger()
	logger.Trace().Msg("finding products by category in database")
	span.AddEvent("finding products by category in database")
	products, err := svc.queries.FindProductsByCategory(c, category)
	if err != nil {
		err = fmt.Errorf(
			"failed to get products with category=%s from database with error=%w",
			category,
			err,
		)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	span.AddEvent("found products by category in database")
	logger.Info().Msgf("found %d products by category in database", len(products))

	responses := make([]response.Product, 0, len(products))
	for _, product := range products {
		responses = append(responses, product.Response())
	}
	return responses, nil
}

func (svc ProductService) UpdateProduct(
	c context.Context,
	id int64,
	param request.Product,
) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService UpdateProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Ctx(c).
		Str(log.KeyTag, "ProductService UpdateProduct").
		Int64(log.KeyProductID, id).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "verifying product exists").Logger()
	logger.Trace().Msg("verifying product exists in database")
	span.AddEvent("verifying product exists in database")
	_, err := svc.queries.FindProductById(c, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf("product with id=%d %w", id, inErrors.ErrProductNotFound)
			inOtel.RecordError(err, span)
			logger.Warn().Err(err).Msgf("product with id=%d not found for update", id)
			return response.Product{}, err
		}
		err = fmt.Errorf("failed to find product with id=%d with error=%w", id, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	span.AddEvent("verified product exists in database")
	logger.Info().Msg("verified product exists in database")

	// The fetched row is discarded; the write replaces every mutable
	// field with the request's values under the same identity. The
	// check and the write are not serialized, a concurrent writer can
	// win in between.
	logger = logger.With().Str(log.KeyProcess, "updating product in database").Logger()
	logger.Trace().Msg("updating product in database")
	span.AddEvent("updating product in database")
	product, err := svc.queries.UpdateProduct(c, repository.UpdateProductParams{
		Name:        param.Name,
		Description: param.Description,
		Category:    param.Category,
		Price:       repository.NumericFromDecimal(param.Price),
		ID:          id,
	})
	if err != nil {
		err = fmt.Errorf("failed to update product with id=%d with error=%w", id, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	span.AddEvent("updated product in database")
	logger = logger.With().Any(log.KeyProduct, product).Logger()
	logger.Info().Msg("updated product in database")

	return product.Response(), nil
}

func (svc ProductService) RemoveProduct(
	c context.Context,
	id int64,
) error {
	c, span := otel.Tracer.Start(c, "ProductService RemoveProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Ctx(c).
		Str(log.KeyTag, "ProductService RemoveProduct").
		Int64(log.KeyProductID, id).
		Logger()

	// No existence check on purpose: deleting an absent id is a silent
	// no-op, the delete is idempotent from this layer's viewpoint.
	logger = logger.With().Str(log.KeyProcess, "removing product in database").Logger()
	logger.Trace().Msg("removing product in database")
	span.AddEvent("removing product in database")
	err := svc.queries.DeleteProduct(c, id)
	if err != nil {
		err = fmt.Errorf("failed to remove product with id=%d with error=%w", id, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	span.AddEvent("removed product in database")
	logger.Info().Msg("removed product in database")

	return nil
}

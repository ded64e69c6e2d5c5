package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/crednova/credit-approval-service/internal/application/dto"
	"github.com/crednova/credit-approval-service/internal/domain/port"
	"github.com/crednova/credit-approval-service/internal/domain/service"
)

// ComputeInstallmentUseCase exposes the installment formula standalone for
// display-only callers. Results are memoized through the cache port: the
// computation is pure, so a cached entry is always valid.
type ComputeInstallmentUseCase struct {
	cache  port.InstallmentCache
	logger *slog.Logger
}

// NewComputeInstallmentUseCase wires dependencies. The cache may be nil,
// in which case every call computes.
func NewComputeInstallmentUseCase(cache port.InstallmentCache, logger *slog.Logger) *ComputeInstallmentUseCase {
	return &ComputeInstallmentUseCase{cache: cache, logger: logger}
}

// Execute validates the inputs and returns the monthly installment.
func (uc *ComputeInstallmentUseCase) Execute(ctx context.Context, req dto.ComputeInstallmentRequest) (dto.InstallmentResponse, error) {
	if err := validateProposal(req.Principal, req.InterestRate, req.TenureMonths); err != nil {
		return dto.InstallmentResponse{}, err
	}

	resp := dto.InstallmentResponse{
		Principal:    req.Principal,
		InterestRate: req.InterestRate,
		TenureMonths: req.TenureMonths,
	}

	key := fmt.Sprintf("emi:%s:%s:%d", req.Principal, req.InterestRate, req.TenureMonths)
	if uc.cache != nil {
		if amount, ok := uc.cache.Get(ctx, key); ok {
			resp.MonthlyInstallment = amount
			return resp, nil
		}
	}

	resp.MonthlyInstallment = service.Installment(req.Principal, req.InterestRate, req.TenureMonths)

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, resp.MonthlyInstallment); err != nil {
			uc.logger.WarnContext(ctx, "failed to cache installment", "key", key, "error", err)
		}
	}

	return resp, nil
}

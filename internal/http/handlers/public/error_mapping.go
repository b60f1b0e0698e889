package public

import (
	handlershared "github.com/marketfee-next/internal/http/handlers/shared"
	"github.com/marketfee-next/internal/http/response"
	"github.com/marketfee-next/internal/service"

	"github.com/gin-gonic/gin"
)

var feeApplyErrorRules = []handlershared.MappedError{
	{Target: service.ErrServiceFeeApplyFailed, Code: response.CodeInternal, Key: "error.service_fee_apply_failed"},
}

var productErrorRules = handlershared.ConcatMappedErrors([]handlershared.MappedError{
	{Target: service.ErrProductNotFound, Code: response.CodeNotFound, Key: "error.product_not_found"},
}, feeApplyErrorRules)

var cartErrorRules = handlershared.ConcatMappedErrors([]handlershared.MappedError{
	{Target: service.ErrCustomerRequired, Code: response.CodeBadRequest, Key: "error.customer_required"},
	{Target: service.ErrCartNotFound, Code: response.CodeNotFound, Key: "error.cart_not_found"},
}, feeApplyErrorRules)

var orderErrorRules = handlershared.ConcatMappedErrors([]handlershared.MappedError{
	{Target: service.ErrCustomerRequired, Code: response.CodeBadRequest, Key: "error.customer_required"},
	{Target: service.ErrOrderNotFound, Code: response.CodeNotFound, Key: "error.order_not_found"},
}, feeApplyErrorRules)

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func respondWithMappedError(c *gin.Context, err error, rules []handlershared.MappedError, fallbackKey string) {
	handlershared.RespondWithMappedError(c, err, rules, response.CodeInternal, fallbackKey)
}

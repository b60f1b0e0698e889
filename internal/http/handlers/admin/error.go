package admin

import (
	handlershared "github.com/marketfee-next/internal/http/handlers/shared"
	"github.com/marketfee-next/internal/http/response"
	"github.com/marketfee-next/internal/service"

	"github.com/gin-gonic/gin"
)

var orderErrorRules = []handlershared.MappedError{
	{Target: service.ErrOrderNotFound, Code: response.CodeNotFound, Key: "error.order_not_found"},
	{Target: service.ErrOrderStatusInvalid, Code: response.CodeBadRequest, Key: "error.order_status_invalid"},
	{Target: service.ErrOrderUpdateFailed, Code: response.CodeInternal, Key: "error.order_update_failed"},
	{Target: service.ErrServiceFeeApplyFailed, Code: response.CodeInternal, Key: "error.service_fee_apply_failed"},
}

var snapshotErrorRules = []handlershared.MappedError{
	{Target: service.ErrSnapshotNotFound, Code: response.CodeNotFound, Key: "error.snapshot_not_found"},
	{Target: service.ErrSnapshotInProgress, Code: response.CodeConflict, Key: "error.snapshot_in_progress"},
	{Target: service.ErrSnapshotWriteFailed, Code: response.CodeInternal, Key: "error.snapshot_write_failed"},
	{Target: service.ErrOrderNotFound, Code: response.CodeNotFound, Key: "error.order_not_found"},
}

var serviceFeeErrorRules = []handlershared.MappedError{
	{Target: service.ErrServiceFeeNotFound, Code: response.CodeNotFound, Key: "error.service_fee_not_found"},
	{Target: service.ErrServiceFeeRateInvalid, Code: response.CodeBadRequest, Key: "error.service_fee_rate_invalid"},
	{Target: service.ErrServiceFeeWindow, Code: response.CodeBadRequest, Key: "error.service_fee_window"},
	{Target: service.ErrServiceFeeLevelInvalid, Code: response.CodeBadRequest, Key: "error.service_fee_level_invalid"},
	{Target: service.ErrServiceFeeConfig, Code: response.CodeBadRequest, Key: "error.service_fee_config"},
	{Target: service.ErrServiceFeeInvalid, Code: response.CodeBadRequest, Key: "error.service_fee_invalid"},
	{Target: service.ErrServiceFeeSaveFailed, Code: response.CodeInternal, Key: "error.service_fee_save_failed"},
}

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func respondWithMappedError(c *gin.Context, err error, rules []handlershared.MappedError, fallbackKey string) {
	handlershared.RespondWithMappedError(c, err, rules, response.CodeInternal, fallbackKey)
}

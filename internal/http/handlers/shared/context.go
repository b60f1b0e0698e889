package shared

import (
	"strings"
	"time"

	"github.com/marketfee-next/internal/constants"
	"github.com/marketfee-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CustomerID 从请求头读取顾客标识，缺失时写入错误响应。
func CustomerID(c *gin.Context) (string, bool) {
	customerID := strings.TrimSpace(c.GetHeader(constants.HeaderCustomerID))
	if customerID == "" {
		RespondError(c, response.CodeBadRequest, "error.customer_required", nil)
		return "", false
	}
	return customerID, true
}

// ParseTimeNullable 解析 RFC3339 时间，空串返回 nil。
func ParseTimeNullable(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

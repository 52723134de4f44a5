package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ai-link-navigator/app/server/apperrors"
	"ai-link-navigator/app/server/metrics"
	"ai-link-navigator/app/server/models"
)

type saveDataRequest struct {
	Groups []models.Group `json:"groups"`
}

// DataGet 返回完整目录树
func (a *App) DataGet(c echo.Context) error {
	return c.JSON(http.StatusOK, a.catalog.Get(c.Request().Context()))
}

// DataSave 整体替换目录树。请求体必须带 groups 序列，没有局部更新
func (a *App) DataSave(c echo.Context) error {
	rctx := c.Request().Context()

	var req saveDataRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, apperrors.ErrInvalidFormat)
	}

	// 格式检查只有一条：groups 字段必须存在且是序列。
	// 空序列是合法的清空操作，各字段内容原样保存，不做逐项校验
	if req.Groups == nil {
		return a.er(c, apperrors.ErrInvalidFormat)
	}

	if err := a.catalog.Replace(rctx, &models.Catalog{Groups: req.Groups}); err != nil {
		return a.er(c, err)
	}

	metrics.CatalogSavesTotal.Inc()
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "数据保存成功",
	})
}

package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"vivere-estoque/internal/dto"
	"vivere-estoque/internal/services"
	"vivere-estoque/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// GetEstoqueReport answers JSON by default and a spreadsheet when
// ?format=xlsx is given.
func (c *ReportController) GetEstoqueReport(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	data, err := c.reportService.GetEstoqueReport(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if strings.ToLower(ctx.QueryParam("format")) == "xlsx" {
		return c.respondWithXLSX(ctx, data)
	}

	return utils.SuccessResponse(ctx, data, "Relatório de estoque gerado com sucesso", http.StatusOK)
}

var estoqueReportHeaders = []string{
	"ID", "Material", "Categoria", "Depósito", "Quantidade Disponível",
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, data []dto.EstoqueDTO) error {
	f := excelize.NewFile()
	sheet := "Relatório de Estoque"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &estoqueReportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "E1", style)

	for i, item := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			item.ID, item.NomeItem, item.Categoria, item.NomeDeposito, item.QuantidadeDisponivel,
		}
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "D", 30)
	f.SetColWidth(sheet, "E", "E", 22)

	fileName := fmt.Sprintf("estoque_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}

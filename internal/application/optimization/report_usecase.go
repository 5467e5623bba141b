package optimization

import (
	"context"
	"fmt"
)

// ReportUseCase genera el reporte PDF de recomendaciones sobre una corrida
// fresca del pipeline.
type ReportUseCase struct {
	runner    *UseCase
	generator ReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(runner *UseCase, generator ReportGenerator) *ReportUseCase {
	return &ReportUseCase{runner: runner, generator: generator}
}

// GenerateReport ejecuta una corrida y la renderiza como PDF.
//
// Retorna (pdfBytes, filename, nil) si todo sale bien; los errores de corrida
// suben tal cual (ya vienen envueltos con su contexto).
func (uc *ReportUseCase) GenerateReport(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	result, err := uc.runner.Run(ctx)
	if err != nil {
		return nil, "", err
	}

	pdfBytes, err = uc.generator.GenerateRecommendationsPDF(ctx, result)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("optimizacion_%s.pdf", result.StartedAt.Format("20060102_150405"))
	return pdfBytes, filename, nil
}

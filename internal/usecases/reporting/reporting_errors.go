package reporting

import "errors"

// ErrPeriodRequired sinaliza endpoint de relatório chamado sem o par de datas
var ErrPeriodRequired = errors.New("startDate and endDate are required")

package log

const (
	KeyAppName       = "app"
	KeyRequestID     = "requestId"
	KeyProcess       = "process"
	KeyTag           = "tag"
	KeyConfig        = "config"
	KeyDbURL         = "dbURL"
	KeyRequestBody   = "requestBody"
	KeyRequestHost   = "host"
	KeyRequestIp     = "requesterIP"
	KeyRequestMethod = "requestMethod"
	KeyRequestURI    = "requestURI"
	KeyRequestURL    = "requestURL"
	KeyProduct       = "product"
	KeyProducts      = "products"
	KeyProductID     = "productId"
	KeyCategory      = "category"
)

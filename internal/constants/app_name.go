package constants

const AppProductService = "product-service"

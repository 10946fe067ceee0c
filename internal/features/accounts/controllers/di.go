package accounts_controllers

import (
	accounts_services "clientbase-backend/internal/features/accounts/services"
)

var accountController = &AccountController{
	accounts_services.GetAccountService(),
}

func GetAccountController() *AccountController {
	return accountController
}

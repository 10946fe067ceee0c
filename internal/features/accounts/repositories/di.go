package accounts_repositories

var accountRepository = &AccountRepository{}
var membershipRepository = &MembershipRepository{}

func GetAccountRepository() *AccountRepository {
	return accountRepository
}

func GetMembershipRepository() *MembershipRepository {
	return membershipRepository
}

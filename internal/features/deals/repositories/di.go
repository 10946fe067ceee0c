package deals_repositories

var (
	dealRepository     = &DealRepository{}
	pipelineRepository = &PipelineRepository{}
)

func GetDealRepository() *DealRepository {
	return dealRepository
}

func GetPipelineRepository() *PipelineRepository {
	return pipelineRepository
}
